package twitter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// Nitter collects tweets through a Nitter instance's RSS feeds, which
// needs no API credentials.
type Nitter struct {
	client  *http.Client
	parser  *gofeed.Parser
	baseURL string
}

// NewNitter creates a Nitter RSS collector.
func NewNitter(baseURL string) *Nitter {
	if baseURL == "" {
		baseURL = "https://nitter.net"
	}
	return &Nitter{
		client:  &http.Client{Timeout: 30 * time.Second},
		parser:  gofeed.NewParser(),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Timeline fetches an account's recent tweets from its RSS feed.
func (n *Nitter) Timeline(ctx context.Context, account string) ([]Tweet, error) {
	feedURL := fmt.Sprintf("%s/%s/rss", n.baseURL, account)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create nitter request @%s: %w", account, err)
	}
	req.Header.Set("User-Agent", "cryptolens/1.0")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch nitter @%s: %w", account, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("nitter @%s status %d", account, resp.StatusCode)
	}

	feed, err := n.parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse nitter @%s: %w", account, err)
	}

	var tweets []Tweet
	for _, entry := range feed.Items {
		created := time.Now().UTC()
		if entry.PublishedParsed != nil {
			created = entry.PublishedParsed.UTC()
		}
		tweets = append(tweets, Tweet{
			ID:        fmt.Sprintf("nitter:%s:%s", account, entry.GUID),
			Text:      entry.Title,
			AuthorID:  account,
			CreatedAt: created,
		})
	}
	return tweets, nil
}
