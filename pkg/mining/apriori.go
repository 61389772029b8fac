package mining

import (
	"sort"
	"strings"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

// Default thresholds for association rule mining.
const (
	DefaultMinSupport    = 0.01
	DefaultMinConfidence = 0.5
)

// Rule is an association rule between hashtag sets. Antecedent and
// consequent partition a frequent itemset.
type Rule struct {
	Antecedent []string `json:"antecedent"`
	Consequent []string `json:"consequent"`
	Support    float64  `json:"support"`
	Confidence float64  `json:"confidence"`
	Lift       float64  `json:"lift"`
}

// Key is the canonical identity of a rule: both sides sorted and joined.
// Two rules with equal keys are the same rule regardless of item order.
func (r Rule) Key() string {
	ant := append([]string(nil), r.Antecedent...)
	con := append([]string(nil), r.Consequent...)
	sort.Strings(ant)
	sort.Strings(con)
	return strings.Join(ant, ",") + "=>" + strings.Join(con, ",")
}

// Itemset is a canonically sorted item list with its support.
type Itemset struct {
	Items   []string `json:"items"`
	Support float64  `json:"support"`
}

// Apriori mines frequent hashtag itemsets and association rules with
// level-wise candidate generation. Itemsets are kept in canonical sorted
// order so equality is by membership, not insertion order.
type Apriori struct {
	transactions  [][]string
	minSupport    float64
	minConfidence float64

	// levels[k] holds the frequent k-itemsets; supports indexes them by
	// canonical key for O(1) subset-support lookup.
	levels   map[int][]Itemset
	supports map[string]float64
}

// NewApriori creates a miner over the given transactions. Zero thresholds
// take the defaults.
func NewApriori(transactions [][]string, minSupport, minConfidence float64) *Apriori {
	if minSupport <= 0 {
		minSupport = DefaultMinSupport
	}
	if minConfidence <= 0 {
		minConfidence = DefaultMinConfidence
	}
	return &Apriori{
		transactions:  transactions,
		minSupport:    minSupport,
		minConfidence: minConfidence,
		levels:        make(map[int][]Itemset),
		supports:      make(map[string]float64),
	}
}

// Run mines frequent itemsets and derives the rules meeting the
// confidence threshold.
func (a *Apriori) Run() []Rule {
	if len(a.transactions) == 0 {
		return nil
	}
	a.generateFrequentItemsets()
	return a.generateRules()
}

// FrequentItemsets returns the mined itemsets at every level. Run must be
// called first.
func (a *Apriori) FrequentItemsets() map[int][]Itemset {
	return a.levels
}

func (a *Apriori) generateFrequentItemsets() {
	a.levels[1] = a.frequentSingles()
	for k := 2; len(a.levels[k-1]) > 0; k++ {
		frequent := a.filterFrequent(a.candidatesAt(k))
		if len(frequent) == 0 {
			break
		}
		a.levels[k] = frequent
	}
}

// frequentSingles counts raw item frequency; support is occurrences over
// transaction count.
func (a *Apriori) frequentSingles() []Itemset {
	counts := make(map[string]int)
	var order []string
	for _, txn := range a.transactions {
		for _, item := range txn {
			if counts[item] == 0 {
				order = append(order, item)
			}
			counts[item]++
		}
	}
	// Canonical order: the join step at higher levels relies on the level
	// lists being lexicographically sorted.
	sort.Strings(order)

	total := float64(len(a.transactions))
	var frequent []Itemset
	for _, item := range order {
		support := float64(counts[item]) / total
		if support >= a.minSupport {
			is := Itemset{Items: []string{item}, Support: support}
			frequent = append(frequent, is)
			a.supports[canonicalKey(is.Items)] = support
		}
	}
	return frequent
}

// candidatesAt joins frequent (k-1)-itemsets sharing their first k-2 items
// and prunes candidates with an infrequent (k-1)-subset.
func (a *Apriori) candidatesAt(k int) []Itemset {
	prev := a.levels[k-1]
	var candidates []Itemset

	for i := 0; i < len(prev); i++ {
		for j := i + 1; j < len(prev); j++ {
			left, right := prev[i].Items, prev[j].Items

			joinable := true
			for l := 0; l < k-2; l++ {
				if left[l] != right[l] {
					joinable = false
					break
				}
			}
			if !joinable || left[k-2] >= right[k-2] {
				continue
			}

			items := make([]string, k)
			copy(items, left)
			items[k-1] = right[k-2]

			if a.allSubsetsFrequent(items) {
				candidates = append(candidates, Itemset{Items: items})
			}
		}
	}

	// Support by full transaction scan.
	total := float64(len(a.transactions))
	for i := range candidates {
		count := 0
		for _, txn := range a.transactions {
			if containsAll(txn, candidates[i].Items) {
				count++
			}
		}
		candidates[i].Support = float64(count) / total
	}
	return candidates
}

// allSubsetsFrequent checks the Apriori property: every (k-1)-subset of a
// candidate must itself be frequent.
func (a *Apriori) allSubsetsFrequent(items []string) bool {
	subset := make([]string, 0, len(items)-1)
	for skip := range items {
		subset = subset[:0]
		for i, item := range items {
			if i != skip {
				subset = append(subset, item)
			}
		}
		if _, ok := a.supports[canonicalKey(subset)]; !ok {
			return false
		}
	}
	return true
}

func (a *Apriori) filterFrequent(candidates []Itemset) []Itemset {
	var frequent []Itemset
	for _, c := range candidates {
		if c.Support >= a.minSupport {
			frequent = append(frequent, c)
			a.supports[canonicalKey(c.Items)] = c.Support
		}
	}
	return frequent
}

// generateRules enumerates every non-empty proper subset of each frequent
// itemset of size >= 2 as an antecedent.
func (a *Apriori) generateRules() []Rule {
	var rules []Rule

	maxLevel := 0
	for k := range a.levels {
		if k > maxLevel {
			maxLevel = k
		}
	}

	for k := 2; k <= maxLevel; k++ {
		for _, itemset := range a.levels[k] {
			n := len(itemset.Items)
			for mask := 1; mask < (1<<n)-1; mask++ {
				antecedent := make([]string, 0, n-1)
				consequent := make([]string, 0, n-1)
				for i := 0; i < n; i++ {
					if mask&(1<<i) != 0 {
						antecedent = append(antecedent, itemset.Items[i])
					} else {
						consequent = append(consequent, itemset.Items[i])
					}
				}

				antSupport := a.supports[canonicalKey(antecedent)]
				if antSupport == 0 {
					continue
				}
				confidence := itemset.Support / antSupport
				if confidence < a.minConfidence {
					continue
				}

				lift := 0.0
				if conSupport := a.supports[canonicalKey(consequent)]; conSupport > 0 {
					lift = confidence / conSupport
				}

				rules = append(rules, Rule{
					Antecedent: antecedent,
					Consequent: consequent,
					Support:    itemset.Support,
					Confidence: confidence,
					Lift:       lift,
				})
			}
		}
	}
	return rules
}

// MineRules converts tweets to hashtag transactions and runs Apriori.
func MineRules(tweets []twitter.Tweet, minSupport, minConfidence float64) []Rule {
	return NewApriori(Transactions(tweets), minSupport, minConfidence).Run()
}

// canonicalKey joins sorted items into a lookup key. The input slice is
// not modified.
func canonicalKey(items []string) string {
	sorted := append([]string(nil), items...)
	sort.Strings(sorted)
	return strings.Join(sorted, "\x1f")
}

func containsAll(txn, items []string) bool {
	for _, item := range items {
		found := false
		for _, t := range txn {
			if t == item {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
