// Package titlescript implements the legacy attract-mode script format: a
// line-oriented command language that drives the title-screen presentation
// (load a park, move the camera, wait, loop). The format is fixed and small,
// and deliberately tolerant: unrecognized lines are dropped and malformed
// numbers decode as zero, so old hand-edited scripts keep playing.
package titlescript

// CommandKind identifies one of the recognized script instructions.
type CommandKind int

const (
	CommandUndefined CommandKind = iota // parse failure or blank line, never stored
	CommandLoad
	CommandLoadScenario
	CommandLocation
	CommandRotate
	CommandZoom
	CommandFollow
	CommandSpeed
	CommandWait
	CommandRestart
	CommandEnd
	CommandLoop
	CommandEndLoop
)

func (k CommandKind) String() string {
	switch k {
	case CommandUndefined:
		return "UNDEFINED"
	case CommandLoad:
		return "LOAD"
	case CommandLoadScenario:
		return "LOADSC"
	case CommandLocation:
		return "LOCATION"
	case CommandRotate:
		return "ROTATE"
	case CommandZoom:
		return "ZOOM"
	case CommandFollow:
		return "FOLLOW"
	case CommandSpeed:
		return "SPEED"
	case CommandWait:
		return "WAIT"
	case CommandRestart:
		return "RESTART"
	case CommandEnd:
		return "END"
	case CommandLoop:
		return "LOOP"
	case CommandEndLoop:
		return "ENDLOOP"
	}
	return "UNKNOWN"
}

// SaveIndexInvalid marks a LOAD command whose save reference was lost: the
// referenced file no longer exists in the sequence, or never matched one.
const SaveIndexInvalid uint8 = 0xFF

// Truncation policy for free-text fields. The historical format stored these
// in fixed C buffers; we keep the same visible-character limits but drop the
// excess instead of reproducing the buffer layout.
const (
	MaxFieldLength        = 127 // any single tokenizer field
	MaxSpriteNameLength   = 31  // FOLLOW sprite name
	MaxScenarioNameLength = 63  // LOADSC scenario name
)

// Command is one decoded script instruction. Kind selects which of the other
// fields are meaningful; the rest stay at their zero values. Numeric fields
// are deliberately narrow: historical scripts relied on 8/16-bit truncation
// and the decoder reproduces it.
type Command struct {
	Kind CommandKind

	SaveIndex    uint8  // CommandLoad: position into the sequence save list, or SaveIndexInvalid
	Scenario     string // CommandLoadScenario
	X, Y         uint8  // CommandLocation
	Rotations    uint8  // CommandRotate
	Zoom         uint8  // CommandZoom
	SpriteIndex  uint16 // CommandFollow
	SpriteName   string // CommandFollow
	Speed        uint8  // CommandSpeed, always in [1,4]
	Milliseconds uint16 // CommandWait
}

// IsLoadCommand reports whether c switches the displayed park, i.e. is a
// LOAD or LOADSC instruction. Playback uses this to find the next park to
// present when skipping through a sequence.
func IsLoadCommand(c Command) bool {
	switch c.Kind {
	case CommandLoad, CommandLoadScenario:
		return true
	default:
		return false
	}
}
