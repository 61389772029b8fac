package mining

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

func tweetsWithText(texts ...string) []twitter.Tweet {
	base := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	tweets := make([]twitter.Tweet, len(texts))
	for i, text := range texts {
		tweets[i] = twitter.Tweet{ID: string(rune('a' + i)), Text: text, CreatedAt: base}
	}
	return tweets
}

func TestGrowthRate(t *testing.T) {
	// 2 occurrences now vs 1 before doubles: rate 1.0, maximal utility.
	assert.InDelta(t, 1.0, GrowthRate(2, 1), 1e-9)
	assert.InDelta(t, 1.0, normalizeGrowth(GrowthRate(2, 1)), 1e-9)

	// Brand-new tags count as maximal growth, never a division by zero.
	assert.InDelta(t, 1.0, GrowthRate(5, 0), 1e-9)

	assert.InDelta(t, -0.5, GrowthRate(1, 2), 1e-9)
	assert.InDelta(t, 0.25, normalizeGrowth(GrowthRate(1, 2)), 1e-9)

	// Normalization clamps at both ends.
	assert.InDelta(t, 1.0, normalizeGrowth(3.0), 1e-9)
	assert.InDelta(t, 0.0, normalizeGrowth(-2.0), 1e-9)
	assert.InDelta(t, 0.0, normalizeGrowth(GrowthRate(0, 2)), 1e-9)
}

func TestMinePatternsNewWindow(t *testing.T) {
	current := tweetsWithText(
		"#defi #eth looking strong",
		"more #defi #eth talk",
		"#defi #eth everywhere",
	)

	patterns := MinePatterns(current, nil, 0.1, 3)
	require.NotEmpty(t, patterns)

	// With no previous window every tag has utility 1.0.
	for _, p := range patterns {
		assert.InDelta(t, 1.0, p.Utility, 1e-9, "pattern %v", p.Items)
		assert.Equal(t, 3, p.Frequency, "pattern %v", p.Items)
	}

	var items [][]string
	for _, p := range patterns {
		items = append(items, p.Items)
	}
	assert.Contains(t, items, []string{"#defi"})
	assert.Contains(t, items, []string{"#defi", "#eth"})
}

func TestMinePatternsRunningMeanUtility(t *testing.T) {
	previous := tweetsWithText("#eth", "#eth", "#eth", "#eth")
	current := tweetsWithText(
		"#defi #eth",
		"#defi #eth",
		"#defi #eth",
	)

	patterns := MinePatterns(current, previous, 0.1, 3)
	require.Len(t, patterns, 2)

	// defi is new (utility 1.0); eth shrank 4 -> 3 (rate -0.25, utility
	// 0.375). Canonical order puts the higher-utility item first, and the
	// two-item pattern's utility is the mean of both.
	assert.Equal(t, []string{"#defi"}, patterns[0].Items)
	assert.InDelta(t, 1.0, patterns[0].Utility, 1e-9)

	assert.Equal(t, []string{"#defi", "#eth"}, patterns[1].Items)
	assert.InDelta(t, (1.0+0.375)/2, patterns[1].Utility, 1e-9)
}

func TestMinePatternsThresholds(t *testing.T) {
	current := tweetsWithText(
		"#defi #eth",
		"#defi #eth",
		"#defi",
	)

	// Frequency threshold: the pair appears only twice.
	patterns := MinePatterns(current, nil, 0.1, 3)
	for _, p := range patterns {
		assert.GreaterOrEqual(t, p.Frequency, 3, "pattern %v", p.Items)
	}

	// Utility threshold: shrinking tags fall below a high cutoff.
	previous := tweetsWithText("#defi", "#defi", "#defi", "#defi", "#defi")
	patterns = MinePatterns(current, previous, 0.9, 1)
	for _, p := range patterns {
		assert.GreaterOrEqual(t, p.Utility, 0.9, "pattern %v", p.Items)
	}
}

func TestMinePatternsCanonicalOrder(t *testing.T) {
	// The same tag set in different text order must merge into one trie
	// path and therefore one pattern per prefix.
	current := tweetsWithText(
		"#eth #defi",
		"#defi #eth",
		"#eth #defi",
	)

	patterns := MinePatterns(current, nil, 0.1, 3)
	require.Len(t, patterns, 2)
	for _, p := range patterns {
		assert.Equal(t, 3, p.Frequency, "pattern %v", p.Items)
	}
}

func TestMinePatternsEmptyWindow(t *testing.T) {
	assert.Empty(t, MinePatterns(nil, nil, 0.1, 3))
}
