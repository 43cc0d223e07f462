// Package sorter orders tweet collections by author and by creation time.
//
// Every function returns a new collection; the input slice is never reordered.
package sorter

import (
	"slices"
	"strings"
	"time"

	"tweetstats/internal/models"
)

// ByUserName returns the tweets in ascending byte-wise order of UserName.
// Empty usernames sort first and equal usernames keep their input order.
func ByUserName(data *models.Data) *models.Data {
	sorted := data.Clone()

	slices.SortStableFunc(sorted.Tweets, func(a, b models.Tweet) int {
		return strings.Compare(a.UserName, b.UserName)
	})

	return sorted
}

type datedTweet struct {
	tweet models.Tweet
	at    time.Time
}

func compareDated(a, b datedTweet) int {
	return a.at.Compare(b.at)
}
