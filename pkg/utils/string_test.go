package utils

import "testing"

func TestStringHelper_NormalizeWhitespace(t *testing.T) {
	s := NewStringHelper()

	if got := s.NormalizeWhitespace("  line one\n\tline  two "); got != "line one line two" {
		t.Errorf("NormalizeWhitespace = %q, want %q", got, "line one line two")
	}
}

func TestStringHelper_TruncateString(t *testing.T) {
	s := NewStringHelper()

	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"a rather long tweet", 10, "a rathe..."},
		{"日本語のテキスト", 9, "日本語..."},
		{"anything", 0, "anything"},
	}

	for _, tt := range tests {
		if got := s.TruncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
