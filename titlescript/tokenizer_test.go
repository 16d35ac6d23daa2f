package titlescript

import (
	"strings"
	"testing"
)

type lineExpectation struct {
	token, arg1, arg2 string
}

func assertLines(t *testing.T, input string, expected []lineExpectation) {
	t.Helper()
	s := newLineScanner([]byte(input))
	for i, want := range expected {
		token, arg1, arg2 := s.scanLine()
		if token != want.token || arg1 != want.arg1 || arg2 != want.arg2 {
			t.Errorf("line %d: got (%q, %q, %q), want (%q, %q, %q)",
				i, token, arg1, arg2, want.token, want.arg1, want.arg2)
		}
	}
}

func TestScanLineFieldSplitting(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []lineExpectation
	}{
		{
			name:     "two numeric fields",
			input:    "LOCATION 10 20",
			expected: []lineExpectation{{"LOCATION", "10", "20"}},
		},
		{
			name:     "single field",
			input:    "RESTART",
			expected: []lineExpectation{{"RESTART", "", ""}},
		},
		{
			name:     "repeated spaces collapse",
			input:    "LOCATION   10    20",
			expected: []lineExpectation{{"LOCATION", "10", "20"}},
		},
		{
			name:     "leading spaces skipped",
			input:    "   ROTATE 2",
			expected: []lineExpectation{{"ROTATE", "2", ""}},
		},
		{
			name:     "trailing spaces ignored",
			input:    "ROTATE 2   ",
			expected: []lineExpectation{{"ROTATE", "2", ""}},
		},
		{
			name:     "empty line",
			input:    "",
			expected: []lineExpectation{{"", "", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLines(t, tt.input, tt.expected)
		})
	}
}

func TestScanLineLoadMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []lineExpectation
	}{
		{
			name:     "filename with spaces stays one field",
			input:    "LOAD my park.sv6",
			expected: []lineExpectation{{"LOAD", "my park.sv6", ""}},
		},
		{
			name:     "load keyword is case-insensitive",
			input:    "load Six Flags Magic Mountain.sc6",
			expected: []lineExpectation{{"load", "Six Flags Magic Mountain.sc6", ""}},
		},
		{
			name:     "loadsc scenario name with spaces",
			input:    "LOADSC Forest Frontiers",
			expected: []lineExpectation{{"LOADSC", "Forest Frontiers", ""}},
		},
		{
			name:     "longer first field is not load",
			input:    "LOADED a b",
			expected: []lineExpectation{{"LOADED", "a", "b"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLines(t, tt.input, tt.expected)
		})
	}
}

func TestScanLineSpriteMode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []lineExpectation
	}{
		{
			name:     "sprite name keeps spaces",
			input:    "FOLLOW 123 Guest 42 the Brave",
			expected: []lineExpectation{{"FOLLOW", "123", "Guest 42 the Brave"}},
		},
		{
			name:     "sprite index still splits",
			input:    "FOLLOW 123 x",
			expected: []lineExpectation{{"FOLLOW", "123", "x"}},
		},
		{
			name:     "follow without name",
			input:    "FOLLOW 123",
			expected: []lineExpectation{{"FOLLOW", "123", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLines(t, tt.input, tt.expected)
		})
	}
}

func TestScanLineComments(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []lineExpectation
	}{
		{
			name:     "comment after fields",
			input:    "ROTATE 2 # turn twice",
			expected: []lineExpectation{{"ROTATE", "2", ""}},
		},
		{
			name:     "whole-line comment",
			input:    "# SCRIPT FOR Six Flags",
			expected: []lineExpectation{{"", "", ""}},
		},
		{
			name:     "comment closes current field",
			input:    "ROTATE 2#turn",
			expected: []lineExpectation{{"ROTATE", "2", ""}},
		},
		{
			name:     "comment inside load argument",
			input:    "LOAD my#park.sv6",
			expected: []lineExpectation{{"LOAD", "my", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLines(t, tt.input, tt.expected)
		})
	}
}

func TestScanLineTerminators(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []lineExpectation
	}{
		{
			name:  "unix newlines",
			input: "ROTATE 1\nZOOM 2",
			expected: []lineExpectation{
				{"ROTATE", "1", ""},
				{"ZOOM", "2", ""},
			},
		},
		{
			name:  "windows newlines produce empty intermediate lines",
			input: "ROTATE 1\r\nZOOM 2",
			expected: []lineExpectation{
				{"ROTATE", "1", ""},
				{"", "", ""},
				{"ZOOM", "2", ""},
			},
		},
		{
			name:  "no trailing newline",
			input: "END",
			expected: []lineExpectation{
				{"END", "", ""},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertLines(t, tt.input, tt.expected)
		})
	}
}

func TestScanLineTruncation(t *testing.T) {
	long := strings.Repeat("a", 300)
	s := newLineScanner([]byte("WAIT " + long))
	token, arg1, _ := s.scanLine()
	if token != "WAIT" {
		t.Fatalf("token = %q, want WAIT", token)
	}
	if len(arg1) != MaxFieldLength {
		t.Errorf("len(arg1) = %d, want %d", len(arg1), MaxFieldLength)
	}
	if arg1 != long[:MaxFieldLength] {
		t.Errorf("arg1 not a prefix of the input field")
	}
}

func TestScanLineTruncationDoesNotSpill(t *testing.T) {
	// Excess characters are dropped in place; they must not leak into the
	// next field or the next line.
	long := strings.Repeat("b", 200)
	s := newLineScanner([]byte("ZOOM " + long + " 7\nEND"))
	_, arg1, arg2 := s.scanLine()
	if len(arg1) != MaxFieldLength {
		t.Errorf("len(arg1) = %d, want %d", len(arg1), MaxFieldLength)
	}
	if arg2 != "7" {
		t.Errorf("arg2 = %q, want %q", arg2, "7")
	}
	token, _, _ := s.scanLine()
	if token != "END" {
		t.Errorf("next line token = %q, want END", token)
	}
}
