// Package writer serializes tweet collections to XML documents.
package writer

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"tweetstats/internal/models"
)

// Writer errors.
var (
	ErrWrite = errors.New("cannot write tweets")
	ErrRead  = errors.New("cannot read tweets")

	ErrInvalidChar = errors.New("character not allowed in XML")
)

// Writer encodes a collection as <Data><data><Tweet>...</Tweet></data></Data>.
type Writer struct {
	indent bool
}

// NewWriter creates a writer; indent enables two-space pretty printing.
func NewWriter(indent bool) *Writer {
	return &Writer{indent: indent}
}

// Encode writes the XML declaration and the collection to w.
func (wr *Writer) Encode(w io.Writer, data *models.Data) error {
	if data == nil {
		data = &models.Data{}
	}

	if err := checkChars(data); err != nil {
		return err
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	enc := xml.NewEncoder(w)
	if wr.indent {
		enc.Indent("", "  ")
	}

	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// checkChars rejects field values encoding/xml would otherwise rewrite to
// U+FFFD.
func checkChars(data *models.Data) error {
	for i, tw := range data.Tweets {
		fields := []struct{ name, value string }{
			{"Text", tw.Text},
			{"UserName", tw.UserName},
			{"LinkToTweet", tw.LinkToTweet},
			{"FirstLinkUrl", tw.FirstLinkURL},
			{"CreatedAt", tw.CreatedAt},
			{"TweetEmbedCode", tw.TweetEmbedCode},
		}

		for _, f := range fields {
			if !validXML(f.value) {
				return fmt.Errorf("%w: tweet %d %s: %w", ErrWrite, i, f.name, ErrInvalidChar)
			}
		}
	}

	return nil
}

func validXML(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}

	for _, r := range s {
		if !isXMLChar(r) {
			return false
		}
	}

	return true
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 ||
		r == 0x0A ||
		r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// Save writes the collection to path. The document goes to a temporary file
// next to path first and is renamed into place once complete.
func (wr *Writer) Save(data *models.Data, path string) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".tweets-*.xml")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := wr.Encode(tmp, data); err != nil {
		tmp.Close()
		return err
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}

// Load reads a document previously produced by Save.
func Load(path string) (*models.Data, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode parses an XML tweet document from r.
func Decode(r io.Reader) (*models.Data, error) {
	var data models.Data

	if err := xml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}

	return &data, nil
}
