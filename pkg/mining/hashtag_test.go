package mining

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

func TestExtractHashtags(t *testing.T) {
	tags := ExtractHashtags("Big news for #DeFi and #ETH today! #defi")
	assert.Equal(t, []string{"#defi", "#eth", "#defi"}, tags)

	assert.Empty(t, ExtractHashtags("no tags at all"))
	assert.Empty(t, ExtractHashtags(""))
}

func TestWindowKey(t *testing.T) {
	ts := time.Date(2024, 3, 11, 12, 42, 17, 0, time.UTC)

	assert.Equal(t, "2024-03-11T12:00:00Z", WindowKey(ts, 60))
	assert.Equal(t, "2024-03-11T12:30:00Z", WindowKey(ts, 30))

	// Non-UTC timestamps normalize to the same bucket.
	kst := time.FixedZone("KST", 9*3600)
	assert.Equal(t, WindowKey(ts, 60), WindowKey(ts.In(kst), 60))
}

func TestWindowKeysSortTemporally(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 3, 11, 14, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 11, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	keys := make([]string, len(times))
	for i, ts := range times {
		keys[i] = WindowKey(ts, 60)
	}

	sorted := append([]string(nil), keys...)
	sort.Strings(sorted)
	assert.Equal(t, []string{keys[1], keys[0], keys[2]}, sorted)
}

func TestGroupByWindow(t *testing.T) {
	base := time.Date(2024, 3, 11, 12, 0, 0, 0, time.UTC)
	tweets := []twitter.Tweet{
		{ID: "1", Text: "#btc", CreatedAt: base.Add(5 * time.Minute)},
		{ID: "2", Text: "#eth", CreatedAt: base.Add(45 * time.Minute)},
		{ID: "3", Text: "#sol", CreatedAt: base.Add(70 * time.Minute)},
		{ID: "4", Text: "dropped"},
	}

	windows := GroupByWindow(tweets, 60)
	require.Len(t, windows, 2)
	assert.Len(t, windows["2024-03-11T12:00:00Z"], 2)
	assert.Len(t, windows["2024-03-11T13:00:00Z"], 1)

	keys := SortedWindowKeys(windows)
	assert.Equal(t, []string{"2024-03-11T12:00:00Z", "2024-03-11T13:00:00Z"}, keys)
}

func TestTransactionsExcludeEmpty(t *testing.T) {
	tweets := tweetsWithText("#btc #eth", "no tags", "#sol")

	txns := Transactions(tweets)
	require.Len(t, txns, 2)
	assert.Equal(t, []string{"#btc", "#eth"}, txns[0])
	assert.Equal(t, []string{"#sol"}, txns[1])
}

func TestFrequency(t *testing.T) {
	tweets := tweetsWithText("#btc #eth", "#btc", "#BTC again")

	freq := Frequency(tweets)
	assert.Equal(t, 3, freq["#btc"])
	assert.Equal(t, 1, freq["#eth"])
}

func TestCooccurrence(t *testing.T) {
	tweets := tweetsWithText("#eth #btc", "#btc #eth #defi", "#solo")

	co := Cooccurrence(tweets)

	// Pairs key the lexicographically smaller tag first regardless of
	// order in the text.
	assert.Equal(t, 2, co["#btc"]["#eth"])
	assert.Equal(t, 1, co["#btc"]["#defi"])
	assert.Equal(t, 1, co["#defi"]["#eth"])
	assert.NotContains(t, co, "#eth")
	assert.NotContains(t, co, "#solo")
}
