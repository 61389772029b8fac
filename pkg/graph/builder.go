package graph

import (
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minseolee/cryptolens/pkg/sentiment"
	"github.com/minseolee/cryptolens/pkg/twitter"
)

// API is the slice of the Twitter client the builder needs. *twitter.Client
// implements it; tests and the sample fallback provide stubs.
type API interface {
	CheckCredentials(ctx context.Context) bool
	UserByUsername(ctx context.Context, username string) (*twitter.User, error)
	Following(ctx context.Context, userID string) ([]twitter.User, error)
	Followers(ctx context.Context, userID string) ([]twitter.User, error)
	UserTweets(ctx context.Context, userID string, max int) ([]twitter.Tweet, error)
	MentioningTweets(ctx context.Context, username string, max int) ([]twitter.Tweet, error)
}

// Builder crawls a seed account's network into a Graph. Crawl failures
// degrade to the built-in sample dataset rather than erroring out.
type Builder struct {
	api      API
	analyzer *sentiment.Analyzer
	log      logrus.FieldLogger
}

// NewBuilder creates a graph builder.
func NewBuilder(api API, analyzer *sentiment.Analyzer, log logrus.FieldLogger) *Builder {
	if analyzer == nil {
		analyzer = sentiment.NewAnalyzer()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Builder{api: api, analyzer: analyzer, log: log}
}

// Build crawls the network around seedUsername to the given depth and
// returns a validated graph. The sample dataset is used when credentials
// are missing or the seed cannot be resolved.
func (b *Builder) Build(ctx context.Context, seedUsername string, depth int) Graph {
	if depth <= 0 {
		depth = 1
	}

	if !b.api.CheckCredentials(ctx) {
		b.log.Info("twitter credentials unavailable, using sample data")
		return Validate(SampleGraph(seedUsername))
	}

	seed, err := b.api.UserByUsername(ctx, seedUsername)
	if err != nil || seed == nil {
		b.log.WithField("seed", seedUsername).Info("seed user not found, using sample data")
		return Validate(SampleGraph(seedUsername))
	}

	bld := &crawl{
		builder: b,
		nodes:   []Node{},
		links:   map[string]*Link{},
		order:   []string{},
		seen:    map[string]bool{},
	}

	bld.addNode(*seed, GroupSeed)
	bld.processNetwork(ctx, seed.ID, seed.Username, depth, 0)

	// Attach the seed's own sentiment summary.
	if tweets, err := b.api.UserTweets(ctx, seed.ID, 50); err == nil && len(tweets) > 0 {
		texts := make([]string, len(tweets))
		for i, t := range tweets {
			texts[i] = t.Text
		}
		summary := sentiment.Aggregate(b.analyzer.AnalyzeAll(texts))
		if n := (&Graph{Nodes: bld.nodes}).Node(seed.ID); n != nil {
			n.Sentiment = &summary
		}
	}

	return Validate(Graph{Nodes: bld.nodes, Links: bld.linkSlice()})
}

// crawl holds the in-progress node/link accumulation for one Build call.
type crawl struct {
	builder *Builder
	nodes   []Node
	links   map[string]*Link
	order   []string
	seen    map[string]bool
}

func (c *crawl) processNetwork(ctx context.Context, userID, username string, depth, current int) {
	if current >= depth {
		return
	}

	following, err := c.builder.api.Following(ctx, userID)
	if err != nil {
		c.builder.log.WithError(err).WithField("user", username).Warn("following fetch failed")
		following = nil
	}

	for _, followed := range following {
		if !c.seen[followed.ID] {
			c.addNode(followed, DetermineGroup(followed))
		}
		c.addLink(userID, followed.ID, LinkFollows, 5, time.Time{})

		if current+1 < depth {
			c.processNetwork(ctx, followed.ID, followed.Username, depth, current+1)
		}
	}

	// Seed level also pulls followers and non-follow interactions.
	if current == 0 {
		followers, err := c.builder.api.Followers(ctx, userID)
		if err != nil {
			c.builder.log.WithError(err).WithField("user", username).Warn("followers fetch failed")
		}
		for _, follower := range followers {
			if !c.seen[follower.ID] {
				c.addNode(follower, DetermineGroup(follower))
			}
			c.addLink(follower.ID, userID, LinkFollows, 3, time.Time{})
		}

		c.processInteractions(ctx, userID, username)
	}
}

// processInteractions derives mention/retweet/quote edges from recent
// tweets. Repeat interactions merge into one link with a dampened value.
func (c *crawl) processInteractions(ctx context.Context, userID, username string) {
	tweets, err := c.builder.api.UserTweets(ctx, userID, 50)
	if err != nil {
		c.builder.log.WithError(err).Warn("user tweets fetch failed")
		tweets = nil
	}

	for _, tweet := range tweets {
		if tweet.Entities != nil {
			for _, mention := range tweet.Entities.Mentions {
				c.addLink(userID, mention.ID, LinkMentioned, 3, tweet.CreatedAt)
			}
		}
		for _, ref := range tweet.References {
			switch ref.Type {
			case twitter.RefRetweeted:
				c.addLink(userID, "tweet-"+ref.ID, LinkRetweeted, 4, tweet.CreatedAt)
			case twitter.RefQuoted:
				c.addLink(userID, "tweet-"+ref.ID, LinkQuoted, 5, tweet.CreatedAt)
			}
		}
	}

	mentioning, err := c.builder.api.MentioningTweets(ctx, username, 50)
	if err != nil {
		c.builder.log.WithError(err).Warn("mentioning tweets fetch failed")
		mentioning = nil
	}
	for _, tweet := range mentioning {
		if tweet.AuthorID == "" || tweet.AuthorID == userID {
			continue
		}
		c.addLink(tweet.AuthorID, userID, LinkMentioned, 3, tweet.CreatedAt)
	}
}

func (c *crawl) addNode(user twitter.User, group string) {
	node := Node{
		ID:          user.ID,
		Name:        user.Name,
		Username:    user.Username,
		Group:       group,
		ImageURL:    user.ImageURL,
		Description: user.Description,
	}
	if user.Metrics != nil {
		node.Followers = user.Metrics.Followers
	}
	if group == GroupKOL {
		if rank, ok := KOLScore(user); ok {
			node.KOLRank = rank
		}
	}
	c.nodes = append(c.nodes, node)
	c.seen[user.ID] = true
}

// addLink merges repeat observations of the same (source, target, type),
// saturating the weight at min(8, base + ln(count)).
func (c *crawl) addLink(source, target string, typ LinkType, base float64, ts time.Time) {
	key := source + "\x00" + target + "\x00" + string(typ)
	if l, ok := c.links[key]; ok {
		l.Count++
		l.Value = math.Min(8, base+math.Log(float64(l.Count)))
		if ts.After(l.Timestamp) {
			l.Timestamp = ts
		}
		return
	}
	c.links[key] = &Link{
		Source:    source,
		Target:    target,
		Type:      typ,
		Value:     base,
		Timestamp: ts,
		Count:     1,
	}
	c.order = append(c.order, key)
}

func (c *crawl) linkSlice() []Link {
	links := make([]Link, 0, len(c.order))
	for _, key := range c.order {
		links = append(links, *c.links[key])
	}
	return links
}
