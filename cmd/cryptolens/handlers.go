package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/minseolee/cryptolens/internal/config"
	"github.com/minseolee/cryptolens/internal/scheduler"
	"github.com/minseolee/cryptolens/internal/store"
	"github.com/minseolee/cryptolens/pkg/alert"
	"github.com/minseolee/cryptolens/pkg/analytics"
	"github.com/minseolee/cryptolens/pkg/graph"
	"github.com/minseolee/cryptolens/pkg/sentiment"
	"github.com/minseolee/cryptolens/pkg/server"
	"github.com/minseolee/cryptolens/pkg/topics"
	"github.com/minseolee/cryptolens/pkg/twitter"
)

func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func newLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	return log
}

func buildAlertManager(cfg *config.Config) *alert.Manager {
	var notifiers []alert.Notifier

	if cfg.Alerts.Slack.Enabled && cfg.Alerts.Slack.WebhookURL != "" {
		notifiers = append(notifiers, alert.NewSlack(cfg.Alerts.Slack.WebhookURL))
	}
	if cfg.Alerts.Discord.Enabled && cfg.Alerts.Discord.WebhookURL != "" {
		notifiers = append(notifiers, alert.NewDiscord(cfg.Alerts.Discord.WebhookURL))
	}
	if cfg.Alerts.Webhook.Enabled && cfg.Alerts.Webhook.URL != "" {
		notifiers = append(notifiers, alert.NewWebhook(cfg.Alerts.Webhook.URL, cfg.Alerts.Webhook.Secret))
	}

	return alert.NewManager(notifiers)
}

// tweetSource aggregates Nitter timelines for the configured accounts,
// falling back to the built-in sample dataset when no accounts are
// configured or every fetch fails.
type tweetSource struct {
	nitter   *twitter.Nitter
	accounts []string
	log      logrus.FieldLogger
}

func newTweetSource(cfg *config.Config, log logrus.FieldLogger) *tweetSource {
	return &tweetSource{
		nitter:   twitter.NewNitter(cfg.Crawl.NitterURL),
		accounts: cfg.Crawl.Accounts,
		log:      log,
	}
}

func (s *tweetSource) Collect(ctx context.Context) ([]twitter.Tweet, error) {
	if len(s.accounts) == 0 {
		s.log.Info("no crawl accounts configured, using sample tweets")
		return twitter.SampleTweets(), nil
	}

	var tweets []twitter.Tweet
	for _, account := range s.accounts {
		fetched, err := s.nitter.Timeline(ctx, account)
		if err != nil {
			s.log.WithError(err).WithField("account", account).Warn("nitter fetch failed")
			continue
		}
		tweets = append(tweets, fetched...)
	}
	if len(tweets) == 0 {
		s.log.Info("no tweets fetched, using sample tweets")
		return twitter.SampleTweets(), nil
	}
	return tweets, nil
}

func buildDetector(cfg *config.Config) (store.Store, *topics.Detector, error) {
	db, err := store.NewSQLite(cfg.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	detector := topics.NewDetector(db, topics.Options{
		WindowSize:    cfg.Mining.WindowSize,
		MinSupport:    cfg.Mining.MinSupport,
		MinConfidence: cfg.Mining.MinConfidence,
		MinUtility:    cfg.Mining.MinUtility,
		MinFrequency:  cfg.Mining.MinFrequency,
	})
	return db, detector, nil
}

func buildGraph(ctx context.Context, cfg *config.Config, log logrus.FieldLogger, seed string, depth int) graph.Graph {
	if seed == "" {
		seed = cfg.Crawl.Seed
	}
	if depth == 0 {
		depth = cfg.Crawl.Depth
	}
	builder := graph.NewBuilder(twitter.NewClient(cfg.Crawl.BearerToken), sentiment.NewAnalyzer(), log)
	return builder.Build(ctx, seed, depth)
}

func runCrawl(seed string, depth int, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()

	g := buildGraph(context.Background(), cfg, log, seed, depth)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(g)
	}

	fmt.Printf("%d nodes, %d links\n\n", len(g.Nodes), len(g.Links))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tGROUP\tFOLLOWERS")
	for _, n := range g.Nodes {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", n.ID, n.Name, n.Group, n.Followers)
	}
	return w.Flush()
}

func runAnalyze(seed, metric string, limit int, recommend string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()
	ctx := context.Background()

	g := buildGraph(ctx, cfg, log, seed, 0)
	top := analytics.TopInfluencers(g, analytics.Metric(metric), limit)
	communities := analytics.DetectCommunities(g)

	var recs []analytics.RecommendedConnection
	if recommend != "" {
		recs = analytics.RecommendConnections(g, recommend, limit)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		out := map[string]any{
			"influencers": top,
			"communities": communities,
		}
		if recommend != "" {
			out["recommendations"] = recs
		}
		return enc.Encode(out)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "TOP INFLUENCERS (%s)\n", metric)
	fmt.Fprintln(w, "NAME\tGROUP\tFOLLOWERS\tENGAGEMENT\tDEGREE\tCOMMUNITY")
	for _, n := range top {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.1f\t%.0f\t%d\n",
			n.Name, n.Group, n.Followers, n.Engagement, n.DegreeCentrality, n.Community)
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "COMMUNITIES (%s partition)\n", communities.Method)
	fmt.Fprintln(w, "ID\tSIZE\tDOMINANT GROUP\tAVG FOLLOWERS\tTOP NODES")
	for _, c := range communities.Communities {
		names := make([]string, len(c.TopNodes))
		for i, n := range c.TopNodes {
			names[i] = n.Name
		}
		fmt.Fprintf(w, "%d\t%d\t%s\t%.0f\t%s\n",
			c.ID, c.Size, c.DominantGroup, c.AvgFollowers, strings.Join(names, ", "))
	}

	if recommend != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "RECOMMENDATIONS for %s\n", recommend)
		fmt.Fprintln(w, "NAME\tSCORE\tREASON")
		for _, rec := range recs {
			fmt.Fprintf(w, "%s\t%.1f\t%s\n", rec.Node.Name, rec.Score, rec.Reason)
		}
	}
	return w.Flush()
}

func runTopics(limit int, hashtag string, jsonOutput bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()
	ctx := context.Background()

	db, detector, err := buildDetector(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	tweets, err := newTweetSource(cfg, log).Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect tweets: %w", err)
	}
	if err := detector.Process(ctx, tweets); err != nil {
		return fmt.Errorf("mine windows: %w", err)
	}

	if hashtag != "" {
		timeline, err := detector.TopicTimeline(ctx, hashtag)
		if err != nil {
			return fmt.Errorf("topic timeline: %w", err)
		}
		if jsonOutput {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(timeline)
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "TIMELINE for #%s\n", timeline.Hashtag)
		fmt.Fprintln(w, "WINDOW\tFREQUENCY\tASSOCIATIONS")
		for i, date := range timeline.Dates {
			fmt.Fprintf(w, "%s\t%d\t%s\n", date, timeline.Frequencies[i], formatAssociations(timeline.Associations[i]))
		}
		return w.Flush()
	}

	emerging, err := detector.EmergingTopics(ctx, limit)
	if err != nil {
		return fmt.Errorf("emerging topics: %w", err)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(emerging)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "EMERGING TOPICS (window %s)\n", emerging.WindowKey)
	fmt.Fprintln(w, "UTILITY\tFREQ\tPATTERN")
	for _, p := range emerging.Patterns {
		fmt.Fprintf(w, "%.2f\t%d\t%s\n", p.Utility, p.Frequency, strings.Join(p.Items, " "))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "CONFIDENCE\tSUPPORT\tRULE")
	for _, r := range emerging.Rules {
		fmt.Fprintf(w, "%.2f\t%.2f\t%s => %s\n",
			r.Confidence, r.Support,
			strings.Join(r.Antecedent, " "), strings.Join(r.Consequent, " "))
	}
	return w.Flush()
}

func formatAssociations(assoc map[string]float64) string {
	if len(assoc) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(assoc))
	for tag, weight := range assoc {
		parts = append(parts, fmt.Sprintf("%s(%.2f)", tag, weight))
	}
	return strings.Join(parts, " ")
}

func runServe(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()

	if port == 0 {
		port = cfg.Server.Port
	}

	db, detector, err := buildDetector(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	g := buildGraph(context.Background(), cfg, log, "", 0)
	srv := server.New(g, sentiment.NewAnalyzer(), detector, log, port)
	return srv.ListenAndServe()
}

func runDaemon(port int) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger()

	if port == 0 {
		port = cfg.Server.Port
	}

	db, detector, err := buildDetector(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	analyzer := sentiment.NewAnalyzer()
	builder := graph.NewBuilder(twitter.NewClient(cfg.Crawl.BearerToken), analyzer, log)
	srv := server.New(graph.Graph{}, analyzer, detector, log, port)

	sched := scheduler.New(
		builder,
		newTweetSource(cfg, log),
		detector,
		buildAlertManager(cfg),
		srv.SetGraph,
		log,
		cfg.Crawl.Seed,
		cfg.Crawl.Depth,
		cfg.Schedule.ParseCrawlInterval(),
		cfg.Schedule.ParseMiningInterval(),
	)

	// Start scheduler in background.
	go func() {
		if err := sched.Run(ctx); err != nil && ctx.Err() == nil {
			log.WithError(err).Error("scheduler error")
		}
	}()

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
	}()

	return srv.ListenAndServe()
}
