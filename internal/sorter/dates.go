package sorter

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"tweetstats/internal/models"
)

// Date sorting errors.
var (
	ErrDateParse     = errors.New("unparseable timestamp")
	ErrEmptyDate     = errors.New("empty timestamp")
	ErrUnknownPolicy = errors.New("unknown date failure policy")
)

// Policy decides what ByCreatedAt does with tweets whose timestamp cannot be parsed.
type Policy string

// Supported policies.
const (
	// Quarantine moves failing tweets, in input order, behind every parsed tweet.
	Quarantine Policy = "quarantine"
	// Skip drops failing tweets from the result.
	Skip Policy = "skip"
	// Fail aborts the sort and returns the input order unchanged.
	Fail Policy = "fail"
)

// ParsePolicy converts a configuration value into a Policy.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(strings.ToLower(strings.TrimSpace(s))); p {
	case Quarantine, Skip, Fail:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// DateParseError describes a tweet whose CreatedAt matched none of the layouts.
type DateParseError struct {
	Index    int
	UserName string
	Value    string
	Err      error
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("tweet %d (%s): %v: %q", e.Index, e.UserName, e.Err, e.Value)
}

// Unwrap returns the underlying cause.
func (e *DateParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrDateParse as a match so callers can test the error kind.
func (e *DateParseError) Is(target error) bool {
	return target == ErrDateParse
}

// DateParser parses CreatedAt values against an ordered list of layouts.
type DateParser struct {
	layouts  []string
	location *time.Location
}

// NewDateParser creates a parser that tries layouts in order. Values carry no
// zone, so they are interpreted in UTC.
func NewDateParser(layouts []string) *DateParser {
	return &DateParser{
		layouts:  slices.Clone(layouts),
		location: time.UTC,
	}
}

// Parse replaces " at " with a single space and parses the result.
func (p *DateParser) Parse(raw string) (time.Time, error) {
	value := strings.TrimSpace(strings.ReplaceAll(raw, " at ", " "))
	if value == "" {
		return time.Time{}, ErrEmptyDate
	}

	var lastErr error

	for _, layout := range p.layouts {
		t, err := time.ParseInLocation(layout, value, p.location)
		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no layouts configured")
	}

	return time.Time{}, lastErr
}

// Result is the outcome of a date sort.
type Result struct {
	Data     *models.Data
	Failures []*DateParseError
	parsed   int
}

// Parsed returns how many tweets had a usable timestamp. They occupy the
// front of Data in ascending order.
func (r *Result) Parsed() int {
	return r.parsed
}

// Oldest returns the earliest dated tweet, or nil if none parsed.
func (r *Result) Oldest() *models.Tweet {
	if r == nil || r.parsed == 0 {
		return nil
	}

	return &r.Data.Tweets[0]
}

// Newest returns the latest dated tweet, or nil if none parsed.
func (r *Result) Newest() *models.Tweet {
	if r == nil || r.parsed == 0 {
		return nil
	}

	return &r.Data.Tweets[r.parsed-1]
}

// ByCreatedAt returns the tweets in ascending CreatedAt order. Ties keep their
// input order. Tweets that fail to parse are handled according to policy.
func ByCreatedAt(data *models.Data, parser *DateParser, policy Policy) (*Result, error) {
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}

	var (
		dated    []datedTweet
		rejected []models.Tweet
		failures []*DateParseError
	)

	for i, tweet := range data.Clone().Tweets {
		t, err := parser.Parse(tweet.CreatedAt)
		if err != nil {
			failures = append(failures, &DateParseError{
				Index:    i,
				UserName: tweet.UserName,
				Value:    tweet.CreatedAt,
				Err:      err,
			})
			rejected = append(rejected, tweet)

			continue
		}

		dated = append(dated, datedTweet{tweet: tweet, at: t})
	}

	if len(failures) > 0 && policy == Fail {
		errs := make([]error, len(failures))
		for i, f := range failures {
			errs[i] = f
		}

		return &Result{Data: data.Clone(), Failures: failures},
			fmt.Errorf("sort by date: %d of %d tweets: %w", len(failures), data.Len(), errors.Join(errs...))
	}

	slices.SortStableFunc(dated, compareDated)

	sorted := &models.Data{Tweets: make([]models.Tweet, 0, data.Len())}
	for _, d := range dated {
		sorted.Tweets = append(sorted.Tweets, d.tweet)
	}

	if policy == Quarantine {
		sorted.Tweets = append(sorted.Tweets, rejected...)
	}

	return &Result{Data: sorted, Failures: failures, parsed: len(dated)}, nil
}
