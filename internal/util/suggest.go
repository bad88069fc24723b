package util

import "github.com/sahilm/fuzzy"

// Closest returns up to n candidates fuzzy-ranked against input, best first.
// Used to attach "did you mean" hints to unresolved-fragment warnings.
func Closest(input string, candidates []string, n int) []string {
	if input == "" || len(candidates) == 0 {
		return nil
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}
	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}
