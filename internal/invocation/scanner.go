package invocation

// scanner walks a string byte by byte, tracking bracket depth and string
// literals so that commas and brackets inside `struct{ A int "tag" }` or
// map[K]V are not mistaken for argument separators.
type scanner struct {
	src   string
	pos   int
	depth int
	quote byte // active quote character, 0 outside literals
}

func newScanner(src string) *scanner {
	return &scanner{src: src, pos: -1}
}

// next advances to the next byte that is outside any string literal and
// reports whether one exists. Brackets update depth before next returns, so
// after a closing bracket depth already reflects the closed level.
func (s *scanner) next() bool {
	for s.pos++; s.pos < len(s.src); s.pos++ {
		c := s.src[s.pos]

		if s.quote != 0 {
			switch {
			case c == '\\' && s.quote != '`':
				s.pos++
			case c == s.quote:
				s.quote = 0
			}

			continue
		}

		switch c {
		case '"', '\'', '`':
			s.quote = c
			continue
		case '(', '[', '{':
			s.depth++
		case ')', ']', '}':
			s.depth--
		}

		return true
	}

	return false
}
