package invocation

import "strings"

// directivePrefix starts every directive comment. There is no space after
// the slashes, matching other tool directives such as //go:generate.
const directivePrefix = "//" + Keyword

// CutDirective reports whether the comment text is a newtype directive and
// returns the invocation it carries. The keyword must be followed by a
// delimiter or a style selector, so "//newtypes" is not a directive. A
// trailing "//" comment after the invocation is dropped.
func CutDirective(comment string) (string, bool) {
	rest, ok := strings.CutPrefix(comment, directivePrefix)
	if !ok {
		return "", false
	}

	if !strings.HasPrefix(rest, ".") {
		rest = strings.TrimLeft(rest, " \t")
		if rest == "" || (rest[0] != '(' && rest[0] != '{') {
			return "", false
		}
	}

	text := comment[2:]
	if i := trailingComment(text); i >= 0 {
		text = text[:i]
	}

	return strings.TrimSpace(text), true
}

// trailingComment returns the index of the first "//" outside string
// literals, or -1. Struct tags may contain URLs.
func trailingComment(s string) int {
	sc := newScanner(s)

	for sc.next() {
		if s[sc.pos] == '/' && sc.pos+1 < len(s) && s[sc.pos+1] == '/' {
			return sc.pos
		}
	}

	return -1
}
