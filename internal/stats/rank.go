package stats

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

// TermCount is a ranked word frequency entry.
type TermCount struct {
	Term  string
	Count int
}

// TermScore is a ranked IDF entry.
type TermScore struct {
	Term  string
	Score float64
}

// TopCounts returns the n most frequent terms of at least minLen runes.
// Higher counts come first; equal counts are ordered by term. n <= 0 returns all.
func TopCounts(freq map[string]int, n, minLen int) []TermCount {
	ranked := make([]TermCount, 0, len(freq))

	for term, count := range freq {
		if utf8.RuneCountInString(term) < minLen {
			continue
		}

		ranked = append(ranked, TermCount{Term: term, Count: count})
	}

	slices.SortFunc(ranked, func(a, b TermCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return strings.Compare(a.Term, b.Term)
	})

	return limit(ranked, n)
}

// TopScores returns the n highest scoring terms, ties ordered by term.
// n <= 0 returns all.
func TopScores(scores map[string]float64, n int) []TermScore {
	ranked := make([]TermScore, 0, len(scores))

	for term, score := range scores {
		ranked = append(ranked, TermScore{Term: term, Score: score})
	}

	slices.SortFunc(ranked, func(a, b TermScore) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}

		return strings.Compare(a.Term, b.Term)
	})

	return limit(ranked, n)
}

func limit[T any](s []T, n int) []T {
	if n > 0 && len(s) > n {
		return s[:n]
	}

	return s
}
