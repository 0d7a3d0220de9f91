package plan

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// upperFirst upper-cases the first letter: "meters" -> "Meters".
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return upperCaser.String(s[:size]) + s[size:]
}

// lowerLeading lower-cases the leading capital run of an identifier, keeping
// the last capital when it starts the next word:
//
//	Meters    -> meters
//	ID        -> id
//	URLPath   -> urlPath
//	HTTPSPort -> httpsPort
//	IDs       -> ids
//	URLsByKey -> urlsByKey
func lowerLeading(s string) string {
	runes := []rune(s)

	n := 0
	for n < len(runes) && unicode.IsUpper(runes[n]) {
		n++
	}

	switch {
	case n == 0:
		return s
	case n > 1 && isPluralS(runes, n):
		// The run is a plural acronym; its "s" is already lower-case
	case n > 1 && n < len(runes) && unicode.IsLower(runes[n]):
		// Keep the capital that begins the following word
		n--
	}

	return lowerCaser.String(string(runes[:n])) + string(runes[n:])
}

// isPluralS reports whether runes[i] is an "s" ending a word: the last rune
// or one followed by an upper-case letter.
func isPluralS(runes []rune, i int) bool {
	if i >= len(runes) || runes[i] != 's' {
		return false
	}

	return i+1 == len(runes) || unicode.IsUpper(runes[i+1])
}

// isExported mirrors go/token.IsExported for identifiers cased here.
func isExported(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}

// applyVisibility returns name cased for the requested export state.
func applyVisibility(name string, exported bool) string {
	if exported {
		return upperFirst(name)
	}

	return lowerLeading(name)
}
