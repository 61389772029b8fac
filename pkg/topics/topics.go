// Package topics runs the windowed mining pipeline: it buckets tweets into
// time windows, mines association rules and high-utility patterns per window,
// diffs rule sets against the previous window, and serves emerging-topic and
// timeline views from the store.
package topics

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/minseolee/cryptolens/internal/store"
	"github.com/minseolee/cryptolens/pkg/mining"
	"github.com/minseolee/cryptolens/pkg/twitter"
)

// Options carries the mining thresholds. Zero values fall back to the
// package defaults in pkg/mining.
type Options struct {
	WindowSize    int
	MinSupport    float64
	MinConfidence float64
	MinUtility    float64
	MinFrequency  int
}

func (o Options) withDefaults() Options {
	if o.WindowSize <= 0 {
		o.WindowSize = mining.DefaultWindowSize
	}
	if o.MinSupport <= 0 {
		o.MinSupport = mining.DefaultMinSupport
	}
	if o.MinConfidence <= 0 {
		o.MinConfidence = mining.DefaultMinConfidence
	}
	if o.MinUtility <= 0 {
		o.MinUtility = mining.DefaultMinUtility
	}
	if o.MinFrequency <= 0 {
		o.MinFrequency = mining.DefaultMinFrequency
	}
	return o
}

// Detector drives the per-window mining pass against an injected store.
type Detector struct {
	store store.Store
	opts  Options
}

// NewDetector wires a detector to a store.
func NewDetector(s store.Store, opts Options) *Detector {
	return &Detector{store: s, opts: opts.withDefaults()}
}

// Process buckets tweets into windows and mines each one in temporal order,
// so a window's "previous" neighbor is always persisted before it is needed.
// Re-processing the same tweets overwrites the same keys with identical
// results.
func (d *Detector) Process(ctx context.Context, tweets []twitter.Tweet) error {
	windows := mining.GroupByWindow(tweets, d.opts.WindowSize)

	for _, key := range mining.SortedWindowKeys(windows) {
		windowTweets := windows[key]
		if err := d.store.SaveWindow(ctx, key, windowTweets); err != nil {
			return fmt.Errorf("save window %s: %w", key, err)
		}

		previous, err := d.previousWindow(ctx, key)
		if err != nil {
			return err
		}

		rules := mining.MineRules(windowTweets, d.opts.MinSupport, d.opts.MinConfidence)
		if err := d.store.SaveRules(ctx, key, rules); err != nil {
			return fmt.Errorf("save rules %s: %w", key, err)
		}

		patterns := mining.MinePatterns(windowTweets, previous, d.opts.MinUtility, d.opts.MinFrequency)
		if err := d.store.SavePatterns(ctx, key, patterns); err != nil {
			return fmt.Errorf("save patterns %s: %w", key, err)
		}

		changes := mining.DetectRuleChanges(windowTweets, previous, d.opts.MinSupport, d.opts.MinConfidence)
		if err := d.store.SaveRuleChanges(ctx, key, changes); err != nil {
			return fmt.Errorf("save rule changes %s: %w", key, err)
		}
	}
	return nil
}

// previousWindow returns the tweets of the window immediately before key, or
// nil when key is the earliest known window.
func (d *Detector) previousWindow(ctx context.Context, key string) ([]twitter.Tweet, error) {
	keys, err := d.store.WindowKeys(ctx)
	if err != nil {
		return nil, fmt.Errorf("list windows: %w", err)
	}
	for i, k := range keys {
		if k == key {
			if i == 0 {
				return nil, nil
			}
			prev, err := d.store.Window(ctx, keys[i-1])
			if err != nil {
				return nil, fmt.Errorf("load window %s: %w", keys[i-1], err)
			}
			return prev, nil
		}
	}
	return nil, nil
}

// LatestWindow returns the most recent window's tweets and its key, or an
// empty slice when nothing has been processed yet.
func (d *Detector) LatestWindow(ctx context.Context) ([]twitter.Tweet, string, error) {
	keys, err := d.store.WindowKeys(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list windows: %w", err)
	}
	if len(keys) == 0 {
		return nil, "", nil
	}
	latest := keys[len(keys)-1]
	tweets, err := d.store.Window(ctx, latest)
	if err != nil {
		return nil, "", fmt.Errorf("load window %s: %w", latest, err)
	}
	return tweets, latest, nil
}

// Emerging holds the latest window's high-utility patterns and the rules
// classified as new or emerging.
type Emerging struct {
	WindowKey string           `json:"windowKey"`
	Patterns  []mining.Pattern `json:"patterns"`
	Rules     []mining.Rule    `json:"rules"`
}

// EmergingTopics reads the most recent window and returns its top patterns
// by utility and its new/emerging rules by growth rate, each truncated to
// limit. An empty store yields an empty result, not an error.
func (d *Detector) EmergingTopics(ctx context.Context, limit int) (Emerging, error) {
	if limit <= 0 {
		limit = 10
	}

	keys, err := d.store.WindowKeys(ctx)
	if err != nil {
		return Emerging{}, fmt.Errorf("list windows: %w", err)
	}
	if len(keys) == 0 {
		return Emerging{Patterns: []mining.Pattern{}, Rules: []mining.Rule{}}, nil
	}
	latest := keys[len(keys)-1]

	patterns, err := d.store.Patterns(ctx, latest)
	if err != nil {
		return Emerging{}, fmt.Errorf("load patterns %s: %w", latest, err)
	}
	changes, err := d.store.RuleChanges(ctx, latest)
	if err != nil {
		return Emerging{}, fmt.Errorf("load rule changes %s: %w", latest, err)
	}

	sorted := make([]mining.Pattern, len(patterns))
	copy(sorted, patterns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Utility > sorted[j].Utility })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	growing := make([]mining.RuleChange, 0, len(changes))
	for _, change := range changes {
		if change.ChangeType == mining.ChangeNew || change.ChangeType == mining.ChangeEmerging {
			growing = append(growing, change)
		}
	}
	sort.SliceStable(growing, func(i, j int) bool { return growing[i].GrowthRate > growing[j].GrowthRate })
	if len(growing) > limit {
		growing = growing[:limit]
	}
	rules := make([]mining.Rule, len(growing))
	for i, change := range growing {
		rules[i] = change.Rule
	}

	return Emerging{WindowKey: latest, Patterns: sorted, Rules: rules}, nil
}

// Timeline tracks one hashtag across every stored window.
type Timeline struct {
	Hashtag      string               `json:"hashtag"`
	Dates        []string             `json:"dates"`
	Frequencies  []int                `json:"frequencies"`
	Associations []map[string]float64 `json:"associations"`
}

// TopicTimeline walks all windows in temporal order and reports, per window,
// how many tweets mention the hashtag and which other tags associate with it
// (confidence-weighted, symmetric over rule antecedents and consequents).
func (d *Detector) TopicTimeline(ctx context.Context, hashtag string) (Timeline, error) {
	tag := strings.ToLower(strings.TrimPrefix(hashtag, "#"))
	timeline := Timeline{
		Hashtag:      tag,
		Dates:        []string{},
		Frequencies:  []int{},
		Associations: []map[string]float64{},
	}

	keys, err := d.store.WindowKeys(ctx)
	if err != nil {
		return timeline, fmt.Errorf("list windows: %w", err)
	}

	needle := "#" + tag
	for _, key := range keys {
		tweets, err := d.store.Window(ctx, key)
		if err != nil {
			return timeline, fmt.Errorf("load window %s: %w", key, err)
		}
		rules, err := d.store.Rules(ctx, key)
		if err != nil {
			return timeline, fmt.Errorf("load rules %s: %w", key, err)
		}

		frequency := 0
		for _, tweet := range tweets {
			for _, t := range mining.ExtractHashtags(tweet.Text) {
				if t == needle {
					frequency++
					break
				}
			}
		}

		associations := make(map[string]float64)
		for _, rule := range rules {
			if containsTag(rule.Antecedent, needle) {
				for _, item := range rule.Consequent {
					associations[item] += rule.Confidence
				}
			}
			if containsTag(rule.Consequent, needle) {
				for _, item := range rule.Antecedent {
					associations[item] += rule.Confidence
				}
			}
		}

		timeline.Dates = append(timeline.Dates, key)
		timeline.Frequencies = append(timeline.Frequencies, frequency)
		timeline.Associations = append(timeline.Associations, associations)
	}

	return timeline, nil
}

func containsTag(items []string, tag string) bool {
	for _, item := range items {
		if strings.EqualFold(item, tag) {
			return true
		}
	}
	return false
}
