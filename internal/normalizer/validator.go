package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"tweetstats/internal/models"
)

// Validation errors.
var (
	ErrNilData     = errors.New("no tweet collection")
	ErrMissingText = errors.New("tweet has no text")
)

// Issue is an ingestion problem found on a single tweet.
type Issue struct {
	Index int
	Err   error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%v at index %d", i.Err, i.Index)
}

// Unwrap returns the underlying validation error.
func (i Issue) Unwrap() error {
	return i.Err
}

// Validator checks ingestion preconditions on a collection.
type Validator struct {
	strict bool
}

// NewValidator creates a validator. In strict mode tweets without text are
// dropped; otherwise they are kept and contribute no tokens.
func NewValidator(strict bool) *Validator {
	return &Validator{strict: strict}
}

// Validate returns the accepted collection and the issues found.
func (v *Validator) Validate(data *models.Data) (*models.Data, []Issue, error) {
	if data == nil {
		return nil, nil, ErrNilData
	}

	accepted := &models.Data{Tweets: make([]models.Tweet, 0, data.Len())}

	var issues []Issue

	for i, tweet := range data.Tweets {
		if strings.TrimSpace(tweet.Text) == "" {
			issues = append(issues, Issue{Index: i, Err: ErrMissingText})

			if v.strict {
				continue
			}
		}

		accepted.Tweets = append(accepted.Tweets, tweet)
	}

	return accepted, issues, nil
}
