package twitter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.twitter.com/2"

// Client talks to the Twitter API v2 with bearer-token auth.
type Client struct {
	client  *http.Client
	baseURL string
	bearer  string
}

// NewClient creates an API client. An empty bearer token is allowed; calls
// will fail credential checks and callers are expected to fall back to the
// sample dataset.
func NewClient(bearerToken string) *Client {
	return &Client{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
		bearer:  bearerToken,
	}
}

const (
	userFields  = "description,profile_image_url,public_metrics"
	tweetFields = "created_at,public_metrics,referenced_tweets,entities,author_id"
)

// CheckCredentials reports whether the configured bearer token is usable.
func (c *Client) CheckCredentials(ctx context.Context) bool {
	if c.bearer == "" {
		return false
	}
	var resp struct {
		Data *User `json:"data"`
	}
	err := c.get(ctx, "/users/by/username/twitter", url.Values{}, &resp)
	return err == nil
}

// UserByUsername fetches a single profile. Returns nil without error when
// the user does not exist.
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	var resp struct {
		Data *User `json:"data"`
	}
	q := url.Values{"user.fields": {userFields}}
	if err := c.get(ctx, "/users/by/username/"+url.PathEscape(username), q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// Following lists accounts the given user follows.
func (c *Client) Following(ctx context.Context, userID string) ([]User, error) {
	return c.userList(ctx, "/users/"+url.PathEscape(userID)+"/following")
}

// Followers lists accounts following the given user.
func (c *Client) Followers(ctx context.Context, userID string) ([]User, error) {
	return c.userList(ctx, "/users/"+url.PathEscape(userID)+"/followers")
}

func (c *Client) userList(ctx context.Context, path string) ([]User, error) {
	var resp struct {
		Data []User `json:"data"`
	}
	q := url.Values{
		"user.fields": {userFields},
		"max_results": {"100"},
	}
	if err := c.get(ctx, path, q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// UserTweets fetches a user's recent tweets, newest first.
func (c *Client) UserTweets(ctx context.Context, userID string, max int) ([]Tweet, error) {
	if max <= 0 || max > 100 {
		max = 50
	}
	var resp struct {
		Data []apiTweet `json:"data"`
	}
	q := url.Values{
		"tweet.fields": {tweetFields},
		"max_results":  {fmt.Sprint(max)},
	}
	if err := c.get(ctx, "/users/"+url.PathEscape(userID)+"/tweets", q, &resp); err != nil {
		return nil, err
	}
	return convertTweets(resp.Data), nil
}

// MentioningTweets searches recent tweets that mention the given username.
func (c *Client) MentioningTweets(ctx context.Context, username string, max int) ([]Tweet, error) {
	if max <= 0 || max > 100 {
		max = 50
	}
	var resp struct {
		Data []apiTweet `json:"data"`
	}
	q := url.Values{
		"query":        {"@" + username},
		"tweet.fields": {tweetFields},
		"max_results":  {fmt.Sprint(max)},
	}
	if err := c.get(ctx, "/tweets/search/recent", q, &resp); err != nil {
		return nil, err
	}
	return convertTweets(resp.Data), nil
}

// apiTweet is the wire shape; created_at arrives as an RFC3339 string and
// hashtags as tag objects.
type apiTweet struct {
	ID        string        `json:"id"`
	Text      string        `json:"text"`
	AuthorID  string        `json:"author_id"`
	CreatedAt string        `json:"created_at"`
	Metrics   *TweetMetrics `json:"public_metrics"`
	Refs      []Reference   `json:"referenced_tweets"`
	Entities  *struct {
		Mentions []Mention `json:"mentions"`
		Hashtags []struct {
			Tag string `json:"tag"`
		} `json:"hashtags"`
	} `json:"entities"`
}

func convertTweets(raw []apiTweet) []Tweet {
	tweets := make([]Tweet, 0, len(raw))
	for _, at := range raw {
		t := Tweet{
			ID:         at.ID,
			Text:       at.Text,
			AuthorID:   at.AuthorID,
			Metrics:    at.Metrics,
			References: at.Refs,
		}
		if ts, err := time.Parse(time.RFC3339, at.CreatedAt); err == nil {
			t.CreatedAt = ts.UTC()
		}
		if at.Entities != nil {
			ent := &Entities{Mentions: at.Entities.Mentions}
			for _, h := range at.Entities.Hashtags {
				ent.Hashtags = append(ent.Hashtags, h.Tag)
			}
			t.Entities = ent
		}
		tweets = append(tweets, t)
	}
	return tweets
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request %s: %w", path, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.bearer)
	req.Header.Set("User-Agent", "cryptolens/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}
