package titlescript

import (
	"strings"
)

// Decode parses raw script text into a command sequence. LOAD arguments are
// resolved against saves (the ordered save-entry names of the owning
// sequence): the first case-insensitive match wins, and a filename that
// matches nothing decodes with SaveIndexInvalid. Lines that parse to
// Undefined are dropped, so the result holds only recognized commands.
//
// Decoding never fails: the format tolerates anything. Unknown tokens are
// skipped and malformed numbers read as zero.
func Decode(script []byte, saves []string) []Command {
	var commands []Command
	s := newLineScanner(script)
	for {
		token, arg1, arg2 := s.scanLine()
		c := decodeCommand(token, arg1, arg2, saves)
		if c.Kind != CommandUndefined {
			commands = append(commands, c)
		}
		if !s.more() {
			break
		}
	}
	return commands
}

func decodeCommand(token, arg1, arg2 string, saves []string) Command {
	c := Command{Kind: CommandUndefined}
	if token == "" {
		return c
	}
	switch {
	case strings.EqualFold(token, "LOAD"):
		c.Kind = CommandLoad
		c.SaveIndex = resolveSaveIndex(arg1, saves)
	case strings.EqualFold(token, "LOCATION"):
		c.Kind = CommandLocation
		c.X = uint8(atoi(arg1))
		c.Y = uint8(atoi(arg2))
	case strings.EqualFold(token, "ROTATE"):
		c.Kind = CommandRotate
		c.Rotations = uint8(atoi(arg1))
	case strings.EqualFold(token, "ZOOM"):
		c.Kind = CommandZoom
		c.Zoom = uint8(atoi(arg1))
	case strings.EqualFold(token, "SPEED"):
		c.Kind = CommandSpeed
		c.Speed = clampSpeed(atoi(arg1) & 0xFF)
	case strings.EqualFold(token, "FOLLOW"):
		c.Kind = CommandFollow
		c.SpriteIndex = uint16(atoi(arg1))
		c.SpriteName = truncate(arg2, MaxSpriteNameLength)
	case strings.EqualFold(token, "WAIT"):
		c.Kind = CommandWait
		c.Milliseconds = uint16(atoi(arg1))
	case strings.EqualFold(token, "RESTART"):
		c.Kind = CommandRestart
	case strings.EqualFold(token, "END"):
		c.Kind = CommandEnd
	case strings.EqualFold(token, "LOADSC"):
		c.Kind = CommandLoadScenario
		c.Scenario = truncate(arg1, MaxScenarioNameLength)
	}
	return c
}

// resolveSaveIndex finds the first save entry matching name, ignoring case.
// First match wins even when the list holds duplicate names.
func resolveSaveIndex(name string, saves []string) uint8 {
	for i, save := range saves {
		if strings.EqualFold(name, save) {
			return uint8(i)
		}
	}
	return SaveIndexInvalid
}

// atoi reproduces C atoi: skip leading whitespace, accept an optional sign,
// read leading digits, and give up silently at the first non-digit. "12abc"
// is 12 and "abc" is 0. Strict parsing here would reject scripts the game
// has always accepted.
func atoi(s string) int {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	n := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		n = n*10 + int(s[i]-'0')
		i++
	}
	if neg {
		return -n
	}
	return n
}

func clampSpeed(v int) uint8 {
	if v < 1 {
		return 1
	}
	if v > 4 {
		return 4
	}
	return uint8(v)
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
