// Package models defines the tweet records processed by the statistics pipeline.
package models

import "encoding/xml"

// Tweet is a single tweet record as exported by the tweet archiver.
// Every field is optional; JSON null and missing properties decode to "".
type Tweet struct {
	Text           string `json:"Text" xml:"Text"`
	UserName       string `json:"UserName" xml:"UserName"`
	LinkToTweet    string `json:"LinkToTweet" xml:"LinkToTweet"`
	FirstLinkURL   string `json:"FirstLinkUrl" xml:"FirstLinkUrl"`
	CreatedAt      string `json:"CreatedAt" xml:"CreatedAt"`
	TweetEmbedCode string `json:"TweetEmbedCode" xml:"TweetEmbedCode"`
}

// Data is an ordered collection of tweets.
type Data struct {
	XMLName xml.Name `json:"-" xml:"Data"`
	Tweets  []Tweet  `json:"data" xml:"data>Tweet"`
}

// Len returns the number of tweets; a nil collection is empty.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}

	return len(d.Tweets)
}

// Clone returns a collection with its own copy of the tweet slice.
func (d *Data) Clone() *Data {
	if d == nil {
		return &Data{}
	}

	tweets := make([]Tweet, len(d.Tweets))
	copy(tweets, d.Tweets)

	return &Data{Tweets: tweets}
}

// ByUser groups tweets by UserName. Each group keeps collection order.
func (d *Data) ByUser() map[string][]Tweet {
	groups := make(map[string][]Tweet)
	if d == nil {
		return groups
	}

	for _, tweet := range d.Tweets {
		groups[tweet.UserName] = append(groups[tweet.UserName], tweet)
	}

	return groups
}
