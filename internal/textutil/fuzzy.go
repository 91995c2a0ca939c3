package textutil

import "github.com/sahilm/fuzzy"

// FuzzyScore reports whether every rune of query appears in candidate in
// order, ignoring case. Higher scores indicate tighter matches. An empty
// query matches everything with score zero.
func FuzzyScore(candidate, query string) (int, bool) {
	pattern := Fold(query)
	if pattern == "" {
		return 0, true
	}
	matches := fuzzy.Find(pattern, []string{Fold(candidate)})
	if len(matches) == 0 {
		return 0, false
	}
	return matches[0].Score, true
}
