package titlescript

// The tokenizer splits one logical script line into up to three fields:
// the command token, then two arguments. The rules are irregular because the
// format predates structured config and allows unquoted spaces in filenames:
//
//   - '#' closes the current field and discards the rest of the line.
//   - ' ' separates fields, with two exceptions. Once the first field equals
//     LOAD or LOADSC (case-insensitive), spaces stop separating and the rest
//     of the line is a single filename/scenario argument. Once the first
//     field equals FOLLOW, spaces stop separating only inside the third
//     field (the free-text sprite name); the second field (sprite index)
//     still splits normally.
//   - Consecutive separator spaces collapse, so repeated spaces never
//     produce empty fields.
//   - Newline, carriage return, or end of input closes the line; unfilled
//     trailing fields come back empty.
//
// Fields cap at MaxFieldLength visible characters; excess bytes are dropped
// in place (the field does not spill over into the next one).

// lineScanner walks a script byte-by-byte, one line per Scan call.
type lineScanner struct {
	src []byte
	pos int
}

func newLineScanner(src []byte) *lineScanner {
	return &lineScanner{src: src}
}

// more reports whether any input remains. The decode loop mirrors the
// historical do/while: it always scans at least one line, then continues
// while more input exists.
func (s *lineScanner) more() bool {
	return s.pos < len(s.src)
}

// scanLine consumes one line and returns its three fields. On a line with
// more than three fields the scanner stops at the third, leaving the
// remainder for the next call; such lines never occur in well-formed
// scripts and decode to Undefined anyway.
func (s *lineScanner) scanLine() (token, arg1, arg2 string) {
	var parts [3][]byte
	part := 0
	whitespace := true
	comment := false
	load := false
	sprite := false

	for part < 3 {
		if s.pos >= len(s.src) {
			break
		}
		c := s.src[s.pos]
		s.pos++

		if c == '\n' || c == '\r' {
			break
		}
		if c == '#' {
			comment = true
			continue
		}
		if c == ' ' && !comment && !load && (!sprite || part != 2) {
			if !whitespace {
				if part == 0 {
					switch {
					case matchKeyword(parts[0], "LOAD"), matchKeyword(parts[0], "LOADSC"):
						load = true
					case matchKeyword(parts[0], "FOLLOW"):
						sprite = true
					}
				}
				part++
			}
			whitespace = true
			continue
		}
		if !comment {
			whitespace = false
			if len(parts[part]) < MaxFieldLength {
				parts[part] = append(parts[part], c)
			}
		}
	}
	return string(parts[0]), string(parts[1]), string(parts[2])
}

// matchKeyword reports whether a completed field equals the given uppercase
// keyword, ignoring case. Length must match exactly: "LOADX" is not LOAD.
func matchKeyword(field []byte, keyword string) bool {
	if len(field) != len(keyword) {
		return false
	}
	for i := 0; i < len(field); i++ {
		c := field[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		if c != keyword[i] {
			return false
		}
	}
	return true
}
