// Package store provides keyed per-window storage of raw tweets and mined
// artifacts. The interface is injectable so mining logic works identically
// against the in-memory store and the durable SQLite one.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/minseolee/cryptolens/pkg/mining"
	"github.com/minseolee/cryptolens/pkg/twitter"
)

// Store is keyed by window start timestamp (RFC3339 UTC). Keys sort
// lexicographically in temporal order, which WindowKeys relies on for
// previous-window lookups.
type Store interface {
	SaveWindow(ctx context.Context, key string, tweets []twitter.Tweet) error
	Window(ctx context.Context, key string) ([]twitter.Tweet, error)
	WindowKeys(ctx context.Context) ([]string, error)

	SaveRules(ctx context.Context, key string, rules []mining.Rule) error
	Rules(ctx context.Context, key string) ([]mining.Rule, error)

	SavePatterns(ctx context.Context, key string, patterns []mining.Pattern) error
	Patterns(ctx context.Context, key string) ([]mining.Pattern, error)

	SaveRuleChanges(ctx context.Context, key string, changes []mining.RuleChange) error
	RuleChanges(ctx context.Context, key string) ([]mining.RuleChange, error)

	Close() error
}

// MemoryStore is the process-lifetime keyed store. Writes to the same key
// are last-write-wins; there is no eviction.
type MemoryStore struct {
	mu       sync.RWMutex
	windows  map[string][]twitter.Tweet
	rules    map[string][]mining.Rule
	patterns map[string][]mining.Pattern
	changes  map[string][]mining.RuleChange
}

// NewMemory creates an empty in-memory store.
func NewMemory() *MemoryStore {
	return &MemoryStore{
		windows:  make(map[string][]twitter.Tweet),
		rules:    make(map[string][]mining.Rule),
		patterns: make(map[string][]mining.Pattern),
		changes:  make(map[string][]mining.RuleChange),
	}
}

func (s *MemoryStore) SaveWindow(_ context.Context, key string, tweets []twitter.Tweet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows[key] = tweets
	return nil
}

func (s *MemoryStore) Window(_ context.Context, key string) ([]twitter.Tweet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.windows[key], nil
}

func (s *MemoryStore) WindowKeys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.windows))
	for k := range s.windows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *MemoryStore) SaveRules(_ context.Context, key string, rules []mining.Rule) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules[key] = rules
	return nil
}

func (s *MemoryStore) Rules(_ context.Context, key string) ([]mining.Rule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rules[key], nil
}

func (s *MemoryStore) SavePatterns(_ context.Context, key string, patterns []mining.Pattern) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.patterns[key] = patterns
	return nil
}

func (s *MemoryStore) Patterns(_ context.Context, key string) ([]mining.Pattern, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.patterns[key], nil
}

func (s *MemoryStore) SaveRuleChanges(_ context.Context, key string, changes []mining.RuleChange) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.changes[key] = changes
	return nil
}

func (s *MemoryStore) RuleChanges(_ context.Context, key string) ([]mining.RuleChange, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.changes[key], nil
}

func (s *MemoryStore) Close() error { return nil }
