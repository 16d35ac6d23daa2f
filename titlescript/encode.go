package titlescript

import (
	"fmt"
	"strings"
)

// Encode renders a command sequence back to script text. The output opens
// with a "# SCRIPT FOR <name>" comment and emits exactly one line per
// command, including the inert kinds (Undefined, Loop, EndLoop render as
// blank lines), so line count survives a round trip.
//
// A LOAD whose save reference was lost renders as "LOAD <No save file>".
// The placeholder is deliberately not a valid filename reference: it decodes
// back to the invalid sentinel and tells a human editor the link is broken.
func Encode(name string, saves []string, commands []Command) []byte {
	var sb strings.Builder
	sb.WriteString("# SCRIPT FOR ")
	sb.WriteString(name)
	sb.WriteByte('\n')
	for _, c := range commands {
		writeCommand(&sb, c, saves)
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// CommandText renders a single command the way Encode would, without the
// trailing newline. Inert kinds render as the empty string.
func CommandText(c Command, saves []string) string {
	var sb strings.Builder
	writeCommand(&sb, c, saves)
	return sb.String()
}

func writeCommand(sb *strings.Builder, c Command, saves []string) {
	switch c.Kind {
	case CommandLoad:
		if int(c.SaveIndex) < len(saves) {
			sb.WriteString("LOAD ")
			sb.WriteString(saves[c.SaveIndex])
		} else {
			sb.WriteString("LOAD <No save file>")
		}
	case CommandLoadScenario:
		if c.Scenario == "" {
			sb.WriteString("LOADSC <No scenario name>")
		} else {
			sb.WriteString("LOADSC ")
			sb.WriteString(c.Scenario)
		}
	case CommandLocation:
		fmt.Fprintf(sb, "LOCATION %d %d", c.X, c.Y)
	case CommandRotate:
		fmt.Fprintf(sb, "ROTATE %d", c.Rotations)
	case CommandZoom:
		fmt.Fprintf(sb, "ZOOM %d", c.Zoom)
	case CommandFollow:
		// The trailing space stays even for an empty name.
		fmt.Fprintf(sb, "FOLLOW %d ", c.SpriteIndex)
		sb.WriteString(c.SpriteName)
	case CommandSpeed:
		fmt.Fprintf(sb, "SPEED %d", c.Speed)
	case CommandWait:
		fmt.Fprintf(sb, "WAIT %d", c.Milliseconds)
	case CommandRestart:
		sb.WriteString("RESTART")
	case CommandEnd:
		sb.WriteString("END")
	case CommandUndefined, CommandLoop, CommandEndLoop:
		// reserved in this format, blank line only
	}
}
