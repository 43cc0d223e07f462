package normalizer

import (
	"errors"
	"testing"

	"tweetstats/internal/models"
)

func mixedData() *models.Data {
	return &models.Data{Tweets: []models.Tweet{
		{Text: "kept", UserName: "a"},
		{Text: "", UserName: "b"},
		{Text: "   ", UserName: "c"},
		{Text: "also kept", UserName: "d"},
	}}
}

func TestValidator_Lenient(t *testing.T) {
	accepted, issues, err := NewValidator(false).Validate(mixedData())
	if err != nil {
		t.Fatalf("Validate returned unexpected error: %v", err)
	}

	if accepted.Len() != 4 {
		t.Errorf("accepted = %d, want 4", accepted.Len())
	}

	if len(issues) != 2 {
		t.Fatalf("issues = %d, want 2", len(issues))
	}

	if issues[0].Index != 1 || issues[1].Index != 2 {
		t.Errorf("issue indexes = %d, %d, want 1, 2", issues[0].Index, issues[1].Index)
	}

	if !errors.Is(issues[0], ErrMissingText) {
		t.Errorf("issue = %v, want ErrMissingText", issues[0])
	}

	if issues[0].Error() != "tweet has no text at index 1" {
		t.Errorf("Error() = %q", issues[0].Error())
	}
}

func TestValidator_Strict(t *testing.T) {
	accepted, issues, err := NewValidator(true).Validate(mixedData())
	if err != nil {
		t.Fatalf("Validate returned unexpected error: %v", err)
	}

	if accepted.Len() != 2 {
		t.Fatalf("accepted = %d, want 2", accepted.Len())
	}

	if accepted.Tweets[0].UserName != "a" || accepted.Tweets[1].UserName != "d" {
		t.Errorf("accepted = %+v", accepted.Tweets)
	}

	if len(issues) != 2 {
		t.Errorf("issues = %d, want 2", len(issues))
	}
}

func TestValidator_Nil(t *testing.T) {
	if _, _, err := NewValidator(false).Validate(nil); !errors.Is(err, ErrNilData) {
		t.Errorf("Validate(nil) error = %v, want ErrNilData", err)
	}
}
