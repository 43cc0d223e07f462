// Package normalizer prepares tweet text for statistics: it enforces the
// ingestion preconditions and turns every tweet into a list of word tokens.
package normalizer

import (
	"fmt"

	"tweetstats/internal/models"
)

// Processor handles validation and tokenization.
type Processor struct {
	validator *Validator
	tokenizer *Tokenizer
}

// NewProcessor creates a new processor instance.
func NewProcessor(strict bool) *Processor {
	return &Processor{
		validator: NewValidator(strict),
		tokenizer: NewTokenizer(),
	}
}

// Validate applies the ingestion checks and returns the accepted collection.
func (p *Processor) Validate(data *models.Data) (*models.Data, []Issue, error) {
	accepted, issues, err := p.validator.Validate(data)
	if err != nil {
		return nil, nil, fmt.Errorf("validation failed: %w", err)
	}

	return accepted, issues, nil
}

// Tokenize returns the tokens of every tweet, in collection order.
func (p *Processor) Tokenize(data *models.Data) [][]string {
	docs := make([][]string, 0, data.Len())
	if data == nil {
		return docs
	}

	for _, tweet := range data.Tweets {
		docs = append(docs, p.tokenizer.Tokenize(tweet.Text))
	}

	return docs
}
