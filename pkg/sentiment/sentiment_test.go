package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDeterministic(t *testing.T) {
	a := NewAnalyzer()
	text := "Ethereum staking yields are looking great, very bullish on restaking"

	first := a.Analyze(text)
	second := a.Analyze(text)

	assert.Equal(t, first, second)

	// A fresh analyzer must agree too; caching is an optimization only.
	assert.Equal(t, first, NewAnalyzer().Analyze(text))
}

func TestAnalyzeCryptoLexicon(t *testing.T) {
	a := NewAnalyzer()

	res := a.Analyze("Bitcoin is going to the moon, very bullish!")
	assert.Equal(t, Positive, res.Type)
	assert.Contains(t, res.Positive, "moon")
	assert.Contains(t, res.Positive, "bullish")
	assert.Equal(t, 4, res.Score)

	res = a.Analyze("total scam, the whole project is a ponzi and it will crash")
	assert.Less(t, res.Score, -5)
	assert.Equal(t, VeryNegative, res.Type)
	assert.Contains(t, res.Negative, "scam")
	assert.Contains(t, res.Negative, "ponzi")
	assert.Contains(t, res.Negative, "crash")
}

func TestAnalyzeStripsNoise(t *testing.T) {
	a := NewAnalyzer()

	// URL, mention and hashtag content must not contribute tokens.
	res := a.Analyze("see https://scam.example @scamaccount #scam")
	assert.Equal(t, 0, res.Score)
	assert.Equal(t, Neutral, res.Type)
	assert.Empty(t, res.Tokens)
	assert.Zero(t, res.Comparative)
}

func TestAnalyzeEmptyText(t *testing.T) {
	a := NewAnalyzer()
	for _, text := range []string{"", "   ", "?!,.;"} {
		res := a.Analyze(text)
		assert.Equal(t, 0, res.Score, "text %q", text)
		assert.Equal(t, Neutral, res.Type, "text %q", text)
	}
}

func TestAnalyzeNegation(t *testing.T) {
	a := NewAnalyzer()

	plain := a.Analyze("this is good")
	negated := a.Analyze("this is not good")

	assert.Positive(t, plain.Score)
	assert.Equal(t, -plain.Score, negated.Score)
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		score float64
		want  Type
	}{
		{-10, VeryNegative},
		{-5, VeryNegative},
		{-4.999, Negative},
		{-1, Negative},
		{-0.999, Neutral},
		{0, Neutral},
		{1, Neutral},
		{1.001, Positive},
		{5, Positive},
		{5.001, VeryPositive},
		{10, VeryPositive},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.score), "score %v", tt.score)
	}
}

func TestClassifyCoversAllScores(t *testing.T) {
	// Every score lands in exactly one band; sweeping a fine grid across
	// the cutpoints must never produce an unknown band.
	known := make(map[Type]bool)
	for _, b := range AllTypes() {
		known[b] = true
	}
	for s := -8.0; s <= 8.0; s += 0.125 {
		assert.True(t, known[Classify(s)], "score %v", s)
	}
}

func TestAggregateEmpty(t *testing.T) {
	summary := Aggregate(nil)

	assert.Zero(t, summary.AverageScore)
	assert.Equal(t, Neutral, summary.Type)
	require.Len(t, summary.Distribution, 5)
	for _, b := range AllTypes() {
		assert.Equal(t, 0, summary.Distribution[b], "band %s", b)
	}
}

func TestAggregate(t *testing.T) {
	a := NewAnalyzer()
	results := a.AnalyzeAll([]string{
		"bullish on defi gains",
		"this is a scam and a rugpull",
		"nothing to report today",
	})

	summary := Aggregate(results)
	total := 0
	for _, c := range summary.Distribution {
		total += c
	}
	assert.Equal(t, 3, total)
	assert.Equal(t, Classify(summary.AverageScore), summary.Type)
}

func TestExtractKeyTerms(t *testing.T) {
	a := NewAnalyzer()
	results := a.AnalyzeAll([]string{
		"bullish bullish market",
		"bullish sentiment but this looks like a scam",
	})

	terms := ExtractKeyTerms(results)
	require.NotEmpty(t, terms)

	// "bullish" matched three times and must rank first.
	assert.Equal(t, "bullish", terms[0].Text)
	assert.Equal(t, 3, terms[0].Value)
	assert.Equal(t, Positive, terms[0].Sentiment)

	for _, kt := range terms {
		assert.GreaterOrEqual(t, len(kt.Text), 3)
		if kt.Text == "scam" {
			assert.Equal(t, Negative, kt.Sentiment)
		}
	}
}
