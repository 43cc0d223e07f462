package formatter

import (
	"fmt"
	"io"
	"strconv"

	"tweetstats/internal/models"
	"tweetstats/internal/sorter"
	"tweetstats/internal/stats"
	"tweetstats/pkg/utils"
)

// Reporter writes human-readable pipeline progress and results.
type Reporter struct {
	out       io.Writer
	strings   *utils.StringHelper
	textWidth int
	styled    bool
}

// NewReporter creates a reporter writing to out. Tweet text in record dumps is
// cut to textWidth cells; 0 prints it in full. Tables are drawn as boxes when
// out is a terminal and as markdown otherwise.
func NewReporter(out io.Writer, textWidth int) *Reporter {
	return &Reporter{
		out:       out,
		strings:   utils.NewStringHelper(),
		textWidth: textWidth,
		styled:    IsTerminal(out),
	}
}

// Loaded reports how many tweets were read.
func (r *Reporter) Loaded(count int, path string) {
	fmt.Fprintf(r.out, "Loaded %d tweets from %s.\n\n", count, path)
}

// SortedByUserName confirms the username ordering.
func (r *Reporter) SortedByUserName() {
	fmt.Fprint(r.out, "Tweets sorted by user name.\n\n")
}

// SortedByDate confirms the date ordering and dumps the newest and oldest tweet.
func (r *Reporter) SortedByDate(res *sorter.Result, policy sorter.Policy) {
	fmt.Fprint(r.out, "Tweets sorted by creation date.\n\n")

	if n := len(res.Failures); n > 0 {
		action := "moved to the end"
		if policy == sorter.Skip {
			action = "left out"
		}

		fmt.Fprintf(r.out, "%d tweets with unreadable dates were %s.\n\n", n, action)
	}

	newest, oldest := res.Newest(), res.Oldest()
	if newest == nil || oldest == nil {
		fmt.Fprint(r.out, "No tweets to display.\n\n")
		return
	}

	fmt.Fprintln(r.out, "Newest tweet:")
	r.Tweet(newest)
	fmt.Fprintln(r.out, "Oldest tweet:")
	r.Tweet(oldest)
}

// Tweet dumps a single record.
func (r *Reporter) Tweet(tw *models.Tweet) {
	text := r.strings.TruncateString(r.strings.NormalizeWhitespace(tw.Text), r.textWidth)

	fmt.Fprintf(r.out, "  Text:       %s\n", text)
	fmt.Fprintf(r.out, "  User name:  %s\n", tw.UserName)
	fmt.Fprintf(r.out, "  Created at: %s\n", tw.CreatedAt)
	fmt.Fprintf(r.out, "  Link:       %s\n\n", tw.LinkToTweet)
}

// Saved confirms the XML document was written.
func (r *Reporter) Saved(path string) {
	fmt.Fprintf(r.out, "Tweets saved to %s.\n\n", path)
}

// TopWords prints the ranked word frequency table.
func (r *Reporter) TopWords(rows []stats.TermCount, n, minLen int) {
	fmt.Fprintf(r.out, "Top %d words with at least %d letters:\n", n, minLen)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{strconv.Itoa(i + 1), row.Term, strconv.Itoa(row.Count)}
	}

	r.table([]string{"#", "Word", "Count"}, cells)
}

// TopIDF prints the ranked IDF table.
func (r *Reporter) TopIDF(rows []stats.TermScore, n int) {
	fmt.Fprintf(r.out, "Top %d words by IDF:\n", n)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = []string{strconv.Itoa(i + 1), row.Term, strconv.FormatFloat(row.Score, 'f', 4, 64)}
	}

	r.table([]string{"#", "Word", "IDF"}, cells)
}

// TopUsers prints the tweets-per-user table.
func (r *Reporter) TopUsers(rows []stats.UserCount, n int) {
	fmt.Fprintf(r.out, "Top %d users by tweets:\n", n)

	cells := make([][]string, len(rows))
	for i, row := range rows {
		user := row.User
		if user == "" {
			user = "(none)"
		}

		cells[i] = []string{strconv.Itoa(i + 1), user, strconv.Itoa(row.Tweets)}
	}

	r.table([]string{"#", "User", "Tweets"}, cells)
}

func (r *Reporter) table(headers []string, rows [][]string) {
	aligns := []Alignment{AlignRight, AlignLeft, AlignRight}

	if r.styled {
		fmt.Fprintln(r.out, RenderBox(headers, rows, aligns))
	} else {
		fmt.Fprintln(r.out, RenderMarkdown(headers, rows, aligns))
	}

	fmt.Fprintln(r.out)
}
