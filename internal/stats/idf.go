package stats

import "math"

// IDF returns ln(N/df) for every term of at least minLen runes.
func IDF(docs [][]string, minLen int) map[string]float64 {
	df := DocumentFrequency(docs, minLen)
	total := float64(len(docs))

	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(total / float64(count))
	}

	return idf
}
