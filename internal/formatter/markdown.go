// Package formatter renders pipeline results for the console.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Alignment is the horizontal alignment of a table column.
type Alignment int

// Column alignments.
const (
	AlignLeft Alignment = iota
	AlignRight
)

// RenderMarkdown renders a markdown table whose columns are padded to the
// display width of their widest cell.
func RenderMarkdown(headers []string, rows [][]string, aligns []Alignment) string {
	colCount := len(headers)
	if colCount == 0 {
		return ""
	}

	// Calculate max widths (using display width)
	colWidths := make([]int, colCount)
	for i, h := range headers {
		colWidths[i] = runewidth.StringWidth(h)
	}

	for _, row := range rows {
		for i := 0; i < len(row) && i < colCount; i++ {
			if width := runewidth.StringWidth(row[i]); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Separator needs at least "---"
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	alignOf := func(col int) Alignment {
		if col < len(aligns) {
			return aligns[col]
		}

		return AlignLeft
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, markdownRow(headers, colWidths, func(int) Alignment { return AlignLeft }))

	var sep strings.Builder

	sep.WriteString("|")

	for j, width := range colWidths {
		sep.WriteString(" ")

		if alignOf(j) == AlignRight {
			sep.WriteString(strings.Repeat("-", width-1) + ":")
		} else {
			sep.WriteString(strings.Repeat("-", width))
		}

		sep.WriteString(" |")
	}

	lines = append(lines, sep.String())

	for _, row := range rows {
		lines = append(lines, markdownRow(row, colWidths, alignOf))
	}

	return strings.Join(lines, "\n")
}

func markdownRow(cells []string, colWidths []int, alignOf func(int) Alignment) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, width := range colWidths {
		content := ""
		if j < len(cells) {
			content = cells[j]
		}

		padding := strings.Repeat(" ", max(width-runewidth.StringWidth(content), 0))

		sb.WriteString(" ")

		if alignOf(j) == AlignRight {
			sb.WriteString(padding + content)
		} else {
			sb.WriteString(content + padding)
		}

		sb.WriteString(" |")
	}

	return sb.String()
}
