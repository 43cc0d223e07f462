package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// trimPunctuation is stripped from both ends of every token.
const trimPunctuation = ".,!?"

// Tokenizer splits tweet text into normalized word tokens.
//
// A Tokenizer holds a case mapper and must not be shared between goroutines.
type Tokenizer struct {
	lower cases.Caser
}

// NewTokenizer creates a tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{lower: cases.Lower(language.Und)}
}

// Tokenize splits text on single spaces, trims surrounding whitespace and the
// characters . , ! ? from both ends, lowercases, and drops empty tokens.
func (t *Tokenizer) Tokenize(text string) []string {
	var tokens []string

	for _, word := range strings.Split(text, " ") {
		word = strings.Trim(strings.TrimSpace(word), trimPunctuation)
		if word == "" {
			continue
		}

		tokens = append(tokens, t.lower.String(word))
	}

	return tokens
}

// Tokenize is a convenience wrapper around a fresh Tokenizer.
func Tokenize(text string) []string {
	return NewTokenizer().Tokenize(text)
}
