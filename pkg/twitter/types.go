// Package twitter provides the typed data model for crawled accounts and
// posts, an API v2 client, and a credential-free Nitter RSS collector.
package twitter

import (
	"time"

	"github.com/minseolee/cryptolens/pkg/sentiment"
)

// UserMetrics are the public counters attached to a user profile.
type UserMetrics struct {
	Followers int `json:"followers_count"`
	Following int `json:"following_count"`
	Tweets    int `json:"tweet_count"`
	Listed    int `json:"listed_count"`
}

// User is a crawled account profile.
type User struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Username    string       `json:"username"`
	Description string       `json:"description,omitempty"`
	ImageURL    string       `json:"profile_image_url,omitempty"`
	Metrics     *UserMetrics `json:"public_metrics,omitempty"`
}

// TweetMetrics are the engagement counters of a tweet.
type TweetMetrics struct {
	Retweets int `json:"retweet_count"`
	Replies  int `json:"reply_count"`
	Likes    int `json:"like_count"`
	Quotes   int `json:"quote_count"`
}

// ReferenceType classifies how a tweet refers to another tweet.
type ReferenceType string

const (
	RefRetweeted ReferenceType = "retweeted"
	RefQuoted    ReferenceType = "quoted"
	RefRepliedTo ReferenceType = "replied_to"
)

// Reference links a tweet to another tweet it retweets, quotes or replies to.
type Reference struct {
	Type ReferenceType `json:"type"`
	ID   string        `json:"id"`
}

// Mention is an @-mention extracted from tweet text.
type Mention struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// Entities are the annotations attached to a tweet.
type Entities struct {
	Mentions []Mention `json:"mentions,omitempty"`
	Hashtags []string  `json:"hashtags,omitempty"`
}

// Tweet is an immutable ingested post. Sentiment is attached after scoring.
type Tweet struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	AuthorID   string            `json:"author_id"`
	CreatedAt  time.Time         `json:"created_at"`
	Metrics    *TweetMetrics     `json:"public_metrics,omitempty"`
	References []Reference       `json:"referenced_tweets,omitempty"`
	Entities   *Entities         `json:"entities,omitempty"`
	Sentiment  *sentiment.Result `json:"sentiment,omitempty"`
}
