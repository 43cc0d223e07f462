// Package stats computes word frequency and inverse document frequency over
// tokenized tweets.
//
// Every function takes one token list per tweet. Term length is measured in
// runes. IDF is ln(N/df) with N the number of tweets and no smoothing, so a
// term present in every tweet scores 0.
package stats
