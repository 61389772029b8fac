// Package sentiment scores text polarity with an AFINN-style lexicon
// extended by a crypto-specific term table.
package sentiment

import (
	"regexp"
	"sort"
	"strings"
	"sync"
	"unicode"
)

// Type is a sentiment classification band.
type Type string

const (
	VeryNegative Type = "very-negative"
	Negative     Type = "negative"
	Neutral      Type = "neutral"
	Positive     Type = "positive"
	VeryPositive Type = "very-positive"
)

// AllTypes returns every band in ascending order.
func AllTypes() []Type {
	return []Type{VeryNegative, Negative, Neutral, Positive, VeryPositive}
}

// Classify maps a raw score onto its band. The cutpoints are fixed:
// <=-5, (-5,-1], (-1,1], (1,5], >5.
func Classify(score float64) Type {
	switch {
	case score <= -5:
		return VeryNegative
	case score <= -1:
		return Negative
	case score <= 1:
		return Neutral
	case score <= 5:
		return Positive
	default:
		return VeryPositive
	}
}

// Result is the outcome of scoring a single text.
type Result struct {
	Score       int      `json:"score"`
	Comparative float64  `json:"comparative"`
	Type        Type     `json:"type"`
	Tokens      []string `json:"tokens"`
	Positive    []string `json:"positive"`
	Negative    []string `json:"negative"`
}

// Summary aggregates results over a collection of texts.
type Summary struct {
	AverageScore float64      `json:"average_score"`
	Type         Type         `json:"type"`
	Distribution map[Type]int `json:"distribution"`
}

// KeyTerm is a lexicon word with its frequency and dominant polarity,
// suitable for word-cloud style views.
type KeyTerm struct {
	Text      string `json:"text"`
	Value     int    `json:"value"`
	Sentiment Type   `json:"sentiment"`
}

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	mentionPattern = regexp.MustCompile(`@\w+`)
	hashtagPattern = regexp.MustCompile(`#\w+`)
)

// Analyzer scores texts against the merged lexicon. Scoring is a pure
// function of the input text, so results are memoized for the lifetime
// of the analyzer.
type Analyzer struct {
	lexicon map[string]int

	mu    sync.RWMutex
	cache map[string]Result
}

// NewAnalyzer builds an analyzer with the base lexicon plus crypto overrides.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		lexicon: buildLexicon(),
		cache:   make(map[string]Result),
	}
}

// Analyze scores a single text. URLs, @mentions and #hashtags are
// stripped first since they carry no sentiment signal.
func (a *Analyzer) Analyze(text string) Result {
	a.mu.RLock()
	cached, ok := a.cache[text]
	a.mu.RUnlock()
	if ok {
		return cached
	}

	res := a.analyze(text)

	a.mu.Lock()
	a.cache[text] = res
	a.mu.Unlock()
	return res
}

func (a *Analyzer) analyze(text string) Result {
	clean := urlPattern.ReplaceAllString(text, "")
	clean = mentionPattern.ReplaceAllString(clean, "")
	clean = hashtagPattern.ReplaceAllString(clean, "")

	tokens := tokenize(clean)

	res := Result{Tokens: tokens}
	negated := false
	for _, tok := range tokens {
		if negators[tok] {
			negated = true
			continue
		}

		weight, ok := a.lexicon[tok]
		if !ok {
			negated = false
			continue
		}
		if negated {
			weight = -weight
			negated = false
		}

		res.Score += weight
		if weight > 0 {
			res.Positive = append(res.Positive, tok)
		} else if weight < 0 {
			res.Negative = append(res.Negative, tok)
		}
	}

	if len(tokens) > 0 {
		res.Comparative = float64(res.Score) / float64(len(tokens))
	}
	res.Type = Classify(float64(res.Score))
	return res
}

// AnalyzeAll scores a batch of texts, preserving input order.
func (a *Analyzer) AnalyzeAll(texts []string) []Result {
	results := make([]Result, len(texts))
	for i, text := range texts {
		results[i] = a.Analyze(text)
	}
	return results
}

// Aggregate computes the overall sentiment of a result collection.
// Empty input yields score 0, neutral, and an all-zero distribution.
func Aggregate(results []Result) Summary {
	summary := Summary{
		Type:         Neutral,
		Distribution: make(map[Type]int, 5),
	}
	for _, t := range AllTypes() {
		summary.Distribution[t] = 0
	}

	if len(results) == 0 {
		return summary
	}

	total := 0
	for _, r := range results {
		total += r.Score
		summary.Distribution[r.Type]++
	}

	summary.AverageScore = float64(total) / float64(len(results))
	summary.Type = Classify(summary.AverageScore)
	return summary
}

// ExtractKeyTerms collects matched lexicon words across results with their
// frequencies, sorted by frequency descending. Words shorter than three
// characters are skipped.
func ExtractKeyTerms(results []Result) []KeyTerm {
	type termStat struct {
		count int
		score int
		order int
	}
	stats := make(map[string]*termStat)
	order := 0

	record := func(word string, delta int) {
		if len(word) < 3 {
			return
		}
		st, ok := stats[word]
		if !ok {
			st = &termStat{order: order}
			order++
			stats[word] = st
		}
		st.count++
		st.score += delta
	}

	for _, r := range results {
		for _, w := range r.Positive {
			record(w, 1)
		}
		for _, w := range r.Negative {
			record(w, -1)
		}
	}

	terms := make([]KeyTerm, 0, len(stats))
	for word, st := range stats {
		polarity := Neutral
		if st.score > 0 {
			polarity = Positive
		} else if st.score < 0 {
			polarity = Negative
		}
		terms = append(terms, KeyTerm{Text: word, Value: st.count, Sentiment: polarity})
	}

	// Frequency descending, first-seen order for ties.
	sort.SliceStable(terms, func(i, j int) bool {
		if terms[i].Value != terms[j].Value {
			return terms[i].Value > terms[j].Value
		}
		return stats[terms[i].Text].order < stats[terms[j].Text].order
	})
	return terms
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
