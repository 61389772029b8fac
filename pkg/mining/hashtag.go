// Package mining implements the temporal pattern miners: Apriori
// association rules over hashtag transactions, high-utility pattern mining
// across windows, and rule-change detection between consecutive windows.
package mining

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

// DefaultWindowSize is the time-bucket width in minutes.
const DefaultWindowSize = 60

var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags pulls lowercased hashtag tokens (with the leading '#')
// from raw tweet text, in order of appearance.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllString(text, -1)
	tags := make([]string, len(matches))
	for i, m := range matches {
		tags[i] = strings.ToLower(m)
	}
	return tags
}

// WindowKey returns the bucket key for a timestamp: the RFC3339 UTC start
// of its window. Keys sort lexicographically in temporal order.
func WindowKey(ts time.Time, windowSize int) string {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	window := time.Duration(windowSize) * time.Minute
	return ts.UTC().Truncate(window).Format(time.RFC3339)
}

// GroupByWindow buckets tweets into fixed-size time windows keyed by the
// window's start timestamp. Tweets without a timestamp are skipped.
func GroupByWindow(tweets []twitter.Tweet, windowSize int) map[string][]twitter.Tweet {
	windows := make(map[string][]twitter.Tweet)
	for _, t := range tweets {
		if t.CreatedAt.IsZero() {
			continue
		}
		key := WindowKey(t.CreatedAt, windowSize)
		windows[key] = append(windows[key], t)
	}
	return windows
}

// SortedWindowKeys returns the window keys in temporal order.
func SortedWindowKeys(windows map[string][]twitter.Tweet) []string {
	keys := make([]string, 0, len(windows))
	for k := range windows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Transactions converts tweets into hashtag transactions for rule mining.
// Tweets without hashtags are excluded.
func Transactions(tweets []twitter.Tweet) [][]string {
	var txns [][]string
	for _, t := range tweets {
		tags := ExtractHashtags(t.Text)
		if len(tags) > 0 {
			txns = append(txns, tags)
		}
	}
	return txns
}

// Frequency counts hashtag occurrences across tweets.
func Frequency(tweets []twitter.Tweet) map[string]int {
	freq := make(map[string]int)
	for _, t := range tweets {
		for _, tag := range ExtractHashtags(t.Text) {
			freq[tag]++
		}
	}
	return freq
}

// Cooccurrence counts hashtag pair co-occurrences within single tweets.
// Pairs are keyed with the lexicographically smaller tag first.
func Cooccurrence(tweets []twitter.Tweet) map[string]map[string]int {
	co := make(map[string]map[string]int)
	for _, t := range tweets {
		tags := ExtractHashtags(t.Text)
		if len(tags) < 2 {
			continue
		}
		for i := 0; i < len(tags); i++ {
			for j := i + 1; j < len(tags); j++ {
				a, b := tags[i], tags[j]
				if a > b {
					a, b = b, a
				}
				if co[a] == nil {
					co[a] = make(map[string]int)
				}
				co[a][b]++
			}
		}
	}
	return co
}
