package match

import (
	"sort"
)

// SuggestThreshold is the minimum normalized similarity for a candidate to be
// offered as a "did you mean" suggestion.
const SuggestThreshold = 0.6

// Suggest returns up to limit candidates that look like a misspelling of name,
// best match first. Ties are broken alphabetically so output is stable.
// An exact match is never suggested.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := Similarity(name, c)
		if score >= SuggestThreshold {
			ranked = append(ranked, scored{name: c, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}

		return ranked[i].name < ranked[j].name
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]string, 0, len(ranked))
	for _, r := range ranked {
		result = append(result, r.name)
	}

	return result
}
