// Package loader reads tweet exports into an in-memory collection.
package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"tweetstats/internal/models"
)

// ErrParse is wrapped by every error returned from Load and Decode.
var ErrParse = errors.New("cannot load tweets")

// Load reads the JSON document at path. The document is an object whose "data"
// property holds the tweets; property names match case-insensitively.
//
// On failure Load returns an empty collection together with the error, so the
// caller can report it and keep going.
func Load(path string) (*models.Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return &models.Data{}, fmt.Errorf("%w: %w", ErrParse, err)
	}
	defer file.Close()

	data, err := Decode(file)
	if err != nil {
		return data, fmt.Errorf("%s: %w", path, err)
	}

	return data, nil
}

// Decode parses a JSON tweet export from r.
func Decode(r io.Reader) (*models.Data, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return &models.Data{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	var data models.Data

	if err := json.Unmarshal(raw, &data); err != nil {
		return &models.Data{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return &data, nil
}
