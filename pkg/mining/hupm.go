package mining

import (
	"sort"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

// Default thresholds for high-utility pattern mining.
const (
	DefaultMinUtility   = 0.1
	DefaultMinFrequency = 3
)

// Pattern is a high-utility hashtag pattern: an ordered item list with its
// utility in [0,1] and occurrence count.
type Pattern struct {
	Items     []string `json:"pattern"`
	Utility   float64  `json:"utility"`
	Frequency int      `json:"frequency"`
}

// utilityItem scores one hashtag by its cross-window growth.
type utilityItem struct {
	utility   float64
	frequency int
}

// PatternMiner mines multi-item high-utility patterns from the current
// window, using the previous window to derive per-item growth utilities.
type PatternMiner struct {
	current      []twitter.Tweet
	previous     []twitter.Tweet
	minUtility   float64
	minFrequency int
}

// NewPatternMiner creates a miner. previous may be nil for the first
// window; every hashtag then counts as brand new (maximal growth). Zero
// thresholds take the defaults.
func NewPatternMiner(current, previous []twitter.Tweet, minUtility float64, minFrequency int) *PatternMiner {
	if minUtility <= 0 {
		minUtility = DefaultMinUtility
	}
	if minFrequency <= 0 {
		minFrequency = DefaultMinFrequency
	}
	return &PatternMiner{
		current:      current,
		previous:     previous,
		minUtility:   minUtility,
		minFrequency: minFrequency,
	}
}

// Run computes item utilities, builds the pattern trie and returns
// patterns meeting both thresholds, sorted by utility descending.
func (m *PatternMiner) Run() []Pattern {
	utilities := m.itemUtilities()
	patterns := m.minePatterns(utilities)

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].Utility > patterns[j].Utility
	})
	return patterns
}

// itemUtilities maps each current-window hashtag to a growth-based utility.
// Growth rate (cur-prev)/prev is normalized into [0,1] via (rate+1)/2 with
// clamping; hashtags absent from the previous window get rate 1.
func (m *PatternMiner) itemUtilities() map[string]utilityItem {
	currentFreq := Frequency(m.current)
	previousFreq := Frequency(m.previous)

	utilities := make(map[string]utilityItem, len(currentFreq))
	for tag, freq := range currentFreq {
		utilities[tag] = utilityItem{
			utility:   normalizeGrowth(GrowthRate(freq, previousFreq[tag])),
			frequency: freq,
		}
	}
	return utilities
}

// GrowthRate is (current-previous)/previous, with previous==0 treated as
// maximal growth (rate 1) rather than a division by zero.
func GrowthRate(current, previous int) float64 {
	if previous == 0 {
		return 1
	}
	return float64(current-previous) / float64(previous)
}

func normalizeGrowth(rate float64) float64 {
	normalized := (rate + 1) / 2
	if normalized < 0 {
		return 0
	}
	if normalized > 1 {
		return 1
	}
	return normalized
}

// trieNode is an arena-indexed prefix-tree node; children maps item to the
// arena index of the child node.
type trieNode struct {
	item     string
	count    int
	children map[string]int
}

// patternTrie is a prefix tree over canonically ordered hashtag sequences.
// Nodes live in a flat arena so traversal needs no recursion and no
// parent/child ownership cycles.
type patternTrie struct {
	nodes []trieNode
}

func newPatternTrie() *patternTrie {
	return &patternTrie{nodes: []trieNode{{children: make(map[string]int)}}}
}

func (t *patternTrie) insert(items []string) {
	cur := 0
	for _, item := range items {
		next, ok := t.nodes[cur].children[item]
		if !ok {
			next = len(t.nodes)
			t.nodes = append(t.nodes, trieNode{item: item, children: make(map[string]int)})
			t.nodes[cur].children[item] = next
		}
		t.nodes[next].count++
		cur = next
	}
}

// minePatterns inserts each tweet's hashtags, ordered by utility then
// frequency descending (item name ascending as the final tiebreak so
// identical hashtag sets share a trie path), then walks the trie with an
// explicit stack emitting qualifying paths.
func (m *PatternMiner) minePatterns(utilities map[string]utilityItem) []Pattern {
	trie := newPatternTrie()

	for _, tweet := range m.current {
		tags := ExtractHashtags(tweet.Text)
		tags = dedupe(tags)
		sort.SliceStable(tags, func(i, j int) bool {
			ui, uj := utilities[tags[i]], utilities[tags[j]]
			if ui.utility != uj.utility {
				return ui.utility > uj.utility
			}
			if ui.frequency != uj.frequency {
				return ui.frequency > uj.frequency
			}
			return tags[i] < tags[j]
		})
		if len(tags) > 0 {
			trie.insert(tags)
		}
	}

	type frame struct {
		node    int
		depth   int
		utility float64 // running average along the path
	}

	var patterns []Pattern
	path := make([]string, 0, 8)
	stack := []frame{{node: 0}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := trie.nodes[f.node]
		path = path[:f.depth]
		avg := f.utility

		if f.node != 0 {
			path = append(path, node.item)
			// Incremental running mean of per-item utilities.
			avg = (f.utility*float64(f.depth) + utilities[node.item].utility) / float64(f.depth+1)

			if node.count >= m.minFrequency && avg >= m.minUtility {
				items := make([]string, len(path))
				copy(items, path)
				patterns = append(patterns, Pattern{
					Items:     items,
					Utility:   avg,
					Frequency: node.count,
				})
			}
		}

		// Push children in reverse sorted order so traversal is
		// depth-first in deterministic item order.
		childItems := make([]string, 0, len(node.children))
		for item := range node.children {
			childItems = append(childItems, item)
		}
		sort.Strings(childItems)
		depth := f.depth
		if f.node != 0 {
			depth++
		}
		for i := len(childItems) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				node:    node.children[childItems[i]],
				depth:   depth,
				utility: avg,
			})
		}
	}

	return patterns
}

// MinePatterns runs high-utility pattern mining over a window pair.
func MinePatterns(current, previous []twitter.Tweet, minUtility float64, minFrequency int) []Pattern {
	return NewPatternMiner(current, previous, minUtility, minFrequency).Run()
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, item := range items {
		if !seen[item] {
			seen[item] = true
			out = append(out, item)
		}
	}
	return out
}
