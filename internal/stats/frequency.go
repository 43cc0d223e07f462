package stats

import "unicode/utf8"

// WordFrequency counts every token occurrence across all documents.
func WordFrequency(docs [][]string) map[string]int {
	freq := make(map[string]int)

	for _, tokens := range docs {
		for _, token := range tokens {
			freq[token]++
		}
	}

	return freq
}

// DocumentFrequency counts, for each term of at least minLen runes, the number
// of documents containing it. Repeats inside one document count once.
func DocumentFrequency(docs [][]string, minLen int) map[string]int {
	df := make(map[string]int)

	for _, tokens := range docs {
		seen := make(map[string]struct{}, len(tokens))

		for _, token := range tokens {
			if utf8.RuneCountInString(token) < minLen {
				continue
			}

			if _, ok := seen[token]; ok {
				continue
			}

			seen[token] = struct{}{}
			df[token]++
		}
	}

	return df
}
