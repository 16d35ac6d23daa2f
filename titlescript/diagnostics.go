package titlescript

import "strings"

// LostReference describes a LOAD line whose filename matched no save entry.
// Decoding silently turns such lines into sentinel references; tooling that
// wants to tell the user what was lost re-scans the source with this.
type LostReference struct {
	Line int    // 1-based line number in the script
	Name string // the filename as written
}

// FindLostReferences scans script text for LOAD commands that do not
// resolve against saves. Blank filenames are skipped; a bare "LOAD" line
// was never a reference to begin with.
func FindLostReferences(script []byte, saves []string) []LostReference {
	var lost []LostReference
	s := newLineScanner(script)
	line := 1
	for {
		token, arg1, _ := s.scanLine()
		if strings.EqualFold(token, "LOAD") && arg1 != "" {
			if resolveSaveIndex(arg1, saves) == SaveIndexInvalid {
				lost = append(lost, LostReference{Line: line, Name: arg1})
			}
		}
		if !s.more() {
			return lost
		}
		line++
	}
}
