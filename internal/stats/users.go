package stats

import (
	"cmp"
	"slices"
	"strings"

	"tweetstats/internal/models"
)

// UserCount is a ranked tweets-per-user entry.
type UserCount struct {
	User   string
	Tweets int
}

// TweetsPerUser ranks users by how many tweets they wrote, ties ordered by
// user name. n <= 0 returns all.
func TweetsPerUser(groups map[string][]models.Tweet, n int) []UserCount {
	ranked := make([]UserCount, 0, len(groups))

	for user, tweets := range groups {
		ranked = append(ranked, UserCount{User: user, Tweets: len(tweets)})
	}

	slices.SortFunc(ranked, func(a, b UserCount) int {
		if c := cmp.Compare(b.Tweets, a.Tweets); c != 0 {
			return c
		}

		return strings.Compare(a.User, b.User)
	})

	return limit(ranked, n)
}
