package formatter

import (
	"strings"
	"testing"
)

func TestRenderMarkdown(t *testing.T) {
	got := RenderMarkdown(
		[]string{"#", "Word", "Count"},
		[][]string{{"1", "hello", "3"}, {"2", "hi", "12"}},
		[]Alignment{AlignRight, AlignLeft, AlignRight},
	)

	want := strings.Join([]string{
		"| #   | Word  | Count |",
		"| --: | ----- | ----: |",
		"|   1 | hello |     3 |",
		"|   2 | hi    |    12 |",
	}, "\n")

	if got != want {
		t.Errorf("RenderMarkdown =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderMarkdown_WideCharacters(t *testing.T) {
	got := RenderMarkdown([]string{"Word"}, [][]string{{"日本語"}, {"ab"}}, nil)

	want := strings.Join([]string{
		"| Word   |",
		"| ------ |",
		"| 日本語 |",
		"| ab     |",
	}, "\n")

	if got != want {
		t.Errorf("RenderMarkdown =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderMarkdown_NoRows(t *testing.T) {
	got := RenderMarkdown([]string{"#", "Word"}, nil, nil)

	if lines := strings.Split(got, "\n"); len(lines) != 2 {
		t.Errorf("RenderMarkdown with no rows = %q, want header and separator only", got)
	}
}

func TestRenderMarkdown_NoHeaders(t *testing.T) {
	if got := RenderMarkdown(nil, [][]string{{"x"}}, nil); got != "" {
		t.Errorf("RenderMarkdown(nil headers) = %q, want empty", got)
	}
}

func TestRenderBox(t *testing.T) {
	got := RenderBox([]string{"#", "Word"}, [][]string{{"1", "hello"}, {"2"}}, []Alignment{AlignRight})

	if !strings.Contains(got, "hello") || !strings.Contains(got, "╭") {
		t.Errorf("RenderBox = %q, want rounded table containing hello", got)
	}

	if RenderBox(nil, nil, nil) != "" {
		t.Error("RenderBox(nil) should be empty")
	}
}

func TestIsTerminal_NonFile(t *testing.T) {
	var sb strings.Builder
	if IsTerminal(&sb) {
		t.Error("strings.Builder reported as terminal")
	}
}
