package titlescript

import (
	"strings"
	"testing"
)

func TestEncodeHeader(t *testing.T) {
	got := string(Encode("My Sequence", nil, nil))
	if got != "# SCRIPT FOR My Sequence\n" {
		t.Errorf("Encode() = %q", got)
	}
}

func TestEncodeCommands(t *testing.T) {
	saves := []string{"parkA.sv6", "parkB.sv6"}

	tests := []struct {
		name     string
		command  Command
		expected string
	}{
		{
			name:     "load with valid index",
			command:  Command{Kind: CommandLoad, SaveIndex: 1},
			expected: "LOAD parkB.sv6",
		},
		{
			name:     "load with lost reference",
			command:  Command{Kind: CommandLoad, SaveIndex: SaveIndexInvalid},
			expected: "LOAD <No save file>",
		},
		{
			name:     "loadsc",
			command:  Command{Kind: CommandLoadScenario, Scenario: "Forest Frontiers"},
			expected: "LOADSC Forest Frontiers",
		},
		{
			name:     "loadsc without name",
			command:  Command{Kind: CommandLoadScenario},
			expected: "LOADSC <No scenario name>",
		},
		{
			name:     "location",
			command:  Command{Kind: CommandLocation, X: 10, Y: 20},
			expected: "LOCATION 10 20",
		},
		{
			name:     "rotate",
			command:  Command{Kind: CommandRotate, Rotations: 3},
			expected: "ROTATE 3",
		},
		{
			name:     "zoom",
			command:  Command{Kind: CommandZoom, Zoom: 2},
			expected: "ZOOM 2",
		},
		{
			name:     "follow",
			command:  Command{Kind: CommandFollow, SpriteIndex: 1234, SpriteName: "Guest 42"},
			expected: "FOLLOW 1234 Guest 42",
		},
		{
			name:     "follow keeps trailing space for empty name",
			command:  Command{Kind: CommandFollow, SpriteIndex: 7},
			expected: "FOLLOW 7 ",
		},
		{
			name:     "speed",
			command:  Command{Kind: CommandSpeed, Speed: 4},
			expected: "SPEED 4",
		},
		{
			name:     "wait",
			command:  Command{Kind: CommandWait, Milliseconds: 4000},
			expected: "WAIT 4000",
		},
		{
			name:     "restart",
			command:  Command{Kind: CommandRestart},
			expected: "RESTART",
		},
		{
			name:     "end",
			command:  Command{Kind: CommandEnd},
			expected: "END",
		},
		{
			name:     "loop is inert",
			command:  Command{Kind: CommandLoop},
			expected: "",
		},
		{
			name:     "endloop is inert",
			command:  Command{Kind: CommandEndLoop},
			expected: "",
		},
		{
			name:     "undefined is inert",
			command:  Command{Kind: CommandUndefined},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := string(Encode("seq", saves, []Command{tt.command}))
			want := "# SCRIPT FOR seq\n" + tt.expected + "\n"
			if got != want {
				t.Errorf("Encode() = %q, want %q", got, want)
			}
		})
	}
}

func TestEncodePreservesLineCount(t *testing.T) {
	commands := []Command{
		{Kind: CommandLoad, SaveIndex: SaveIndexInvalid},
		{Kind: CommandLoop},
		{Kind: CommandWait, Milliseconds: 100},
		{Kind: CommandEndLoop},
		{Kind: CommandEnd},
	}
	got := string(Encode("seq", nil, commands))
	// Header plus one line per command, inert kinds included.
	if n := strings.Count(got, "\n"); n != len(commands)+1 {
		t.Errorf("line count = %d, want %d", n, len(commands)+1)
	}
}
