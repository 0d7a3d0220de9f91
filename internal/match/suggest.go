package match

import (
	"sort"
	"strings"
)

// MaxDistance returns the largest edit distance at which word is still
// considered a typo of a known keyword.
func MaxDistance(word string) int {
	return max(1, len([]rune(word))/3)
}

// Suggest returns the candidates within MaxDistance of word, closest first.
// Comparison ignores case, so "Pub" suggests "pub". Ties keep the order of
// candidates. An exact match is not a suggestion.
func Suggest(word string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}

	lw := strings.ToLower(word)
	limit := MaxDistance(lw)

	var found []scored

	for _, c := range candidates {
		if c == word {
			continue
		}

		d := Levenshtein(lw, strings.ToLower(c))
		if d <= limit {
			found = append(found, scored{c, d})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].dist < found[j].dist
	})

	var out []string
	for _, s := range found {
		out = append(out, s.name)
	}

	return out
}
