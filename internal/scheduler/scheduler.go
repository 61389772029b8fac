// Package scheduler runs the periodic crawl and mining loop for daemon mode.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minseolee/cryptolens/pkg/alert"
	"github.com/minseolee/cryptolens/pkg/graph"
	"github.com/minseolee/cryptolens/pkg/topics"
	"github.com/minseolee/cryptolens/pkg/twitter"
)

// TweetSource supplies the tweets for each mining pass.
type TweetSource interface {
	Collect(ctx context.Context) ([]twitter.Tweet, error)
}

// Scheduler runs periodic graph crawls and topic mining.
type Scheduler struct {
	builder   *graph.Builder
	tweets    TweetSource
	detector  *topics.Detector
	alertMgr  *alert.Manager
	onGraph   func(graph.Graph)
	log       logrus.FieldLogger
	seed      string
	depth     int
	crawlInt  time.Duration
	miningInt time.Duration

	// lastAlerted suppresses repeat alerts for the same window.
	lastAlerted string
}

// New creates a new scheduler. onGraph is invoked with each fresh crawl
// result; pass nil if nothing consumes graph snapshots.
func New(
	builder *graph.Builder,
	tweets TweetSource,
	detector *topics.Detector,
	alertMgr *alert.Manager,
	onGraph func(graph.Graph),
	log logrus.FieldLogger,
	seed string,
	depth int,
	crawlInt, miningInt time.Duration,
) *Scheduler {
	if crawlInt == 0 {
		crawlInt = 30 * time.Minute
	}
	if miningInt == 0 {
		miningInt = 15 * time.Minute
	}
	return &Scheduler{
		builder:   builder,
		tweets:    tweets,
		detector:  detector,
		alertMgr:  alertMgr,
		onGraph:   onGraph,
		log:       log,
		seed:      seed,
		depth:     depth,
		crawlInt:  crawlInt,
		miningInt: miningInt,
	}
}

// Run starts the scheduler loop. Blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	crawlTicker := time.NewTicker(s.crawlInt)
	miningTicker := time.NewTicker(s.miningInt)
	defer crawlTicker.Stop()
	defer miningTicker.Stop()

	// Run immediately on start.
	s.log.Info("scheduler: initial crawl")
	s.crawl(ctx)
	s.log.Info("scheduler: initial mining pass")
	s.mineAndAlert(ctx)

	s.log.WithFields(logrus.Fields{
		"crawl_interval":  s.crawlInt.String(),
		"mining_interval": s.miningInt.String(),
	}).Info("scheduler running")

	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return ctx.Err()
		case <-crawlTicker.C:
			s.log.Info("scheduler: crawling")
			s.crawl(ctx)
		case <-miningTicker.C:
			s.log.Info("scheduler: mining")
			s.mineAndAlert(ctx)
		}
	}
}

func (s *Scheduler) crawl(ctx context.Context) {
	g := s.builder.Build(ctx, s.seed, s.depth)
	s.log.WithFields(logrus.Fields{
		"nodes": len(g.Nodes),
		"links": len(g.Links),
	}).Info("crawl complete")
	if s.onGraph != nil {
		s.onGraph(g)
	}
}

func (s *Scheduler) mineAndAlert(ctx context.Context) {
	tweets, err := s.tweets.Collect(ctx)
	if err != nil {
		s.log.WithError(err).Warn("tweet collection failed")
		return
	}
	if err := s.detector.Process(ctx, tweets); err != nil {
		s.log.WithError(err).Warn("mining pass failed")
		return
	}

	if !s.alertMgr.HasNotifiers() {
		return
	}

	emerging, err := s.detector.EmergingTopics(ctx, 5)
	if err != nil {
		s.log.WithError(err).Warn("emerging topic lookup failed")
		return
	}
	if len(emerging.Patterns) == 0 && len(emerging.Rules) == 0 {
		return
	}
	if emerging.WindowKey == s.lastAlerted {
		return
	}

	notification := &alert.Notification{
		Title:     "Emerging crypto topics",
		Body:      fmt.Sprintf("%d high-utility patterns, %d growing rules", len(emerging.Patterns), len(emerging.Rules)),
		WindowKey: emerging.WindowKey,
		Patterns:  emerging.Patterns,
		Rules:     emerging.Rules,
	}
	if err := s.alertMgr.Broadcast(ctx, notification); err != nil {
		s.log.WithError(err).Warn("alert broadcast failed")
		return
	}
	s.lastAlerted = emerging.WindowKey
	s.log.WithField("window", emerging.WindowKey).Info("alerted emerging topics")
}
