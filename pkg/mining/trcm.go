package mining

import (
	"encoding/json"
	"math"

	"github.com/minseolee/cryptolens/pkg/twitter"
)

// ChangeType classifies how a rule moved between consecutive windows.
type ChangeType string

const (
	ChangeNew       ChangeType = "new"
	ChangeEmerging  ChangeType = "emerging"
	ChangeDeclining ChangeType = "declining"
	ChangeStable    ChangeType = "stable"
)

// Growth thresholds for classification.
const growthThreshold = 0.2

// RuleChange wraps a current-window rule with its change classification.
// GrowthRate is +Inf for rules with no previous-window counterpart.
type RuleChange struct {
	Rule       Rule       `json:"rule"`
	ChangeType ChangeType `json:"changeType"`
	GrowthRate float64    `json:"growthRate"`
}

// MarshalJSON encodes an infinite growth rate as null, since JSON has no
// representation for infinity.
func (c RuleChange) MarshalJSON() ([]byte, error) {
	type wire struct {
		Rule       Rule       `json:"rule"`
		ChangeType ChangeType `json:"changeType"`
		GrowthRate *float64   `json:"growthRate"`
	}
	w := wire{Rule: c.Rule, ChangeType: c.ChangeType}
	if !math.IsInf(c.GrowthRate, 0) {
		w.GrowthRate = &c.GrowthRate
	}
	return json.Marshal(w)
}

// UnmarshalJSON restores null growth rates to +Inf.
func (c *RuleChange) UnmarshalJSON(data []byte) error {
	type wire struct {
		Rule       Rule       `json:"rule"`
		ChangeType ChangeType `json:"changeType"`
		GrowthRate *float64   `json:"growthRate"`
	}
	var w wire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	c.Rule = w.Rule
	c.ChangeType = w.ChangeType
	if w.GrowthRate != nil {
		c.GrowthRate = *w.GrowthRate
	} else {
		c.GrowthRate = math.Inf(1)
	}
	return nil
}

// DetectRuleChanges mines rules for both windows and classifies every
// current-window rule against its previous-window counterpart. Rules that
// disappeared are not reported; this is a one-directional diff.
func DetectRuleChanges(current, previous []twitter.Tweet, minSupport, minConfidence float64) []RuleChange {
	currentRules := MineRules(current, minSupport, minConfidence)

	if previous == nil {
		changes := make([]RuleChange, len(currentRules))
		for i, rule := range currentRules {
			changes[i] = RuleChange{Rule: rule, ChangeType: ChangeNew, GrowthRate: math.Inf(1)}
		}
		return changes
	}

	previousByKey := make(map[string]Rule)
	for _, rule := range MineRules(previous, minSupport, minConfidence) {
		previousByKey[rule.Key()] = rule
	}

	changes := make([]RuleChange, 0, len(currentRules))
	for _, rule := range currentRules {
		prev, ok := previousByKey[rule.Key()]
		if !ok {
			changes = append(changes, RuleChange{Rule: rule, ChangeType: ChangeNew, GrowthRate: math.Inf(1)})
			continue
		}

		supportGrowth := ratioGrowth(rule.Support, prev.Support)
		confidenceGrowth := ratioGrowth(rule.Confidence, prev.Confidence)
		growth := (supportGrowth + confidenceGrowth) / 2

		changeType := ChangeStable
		if growth > growthThreshold {
			changeType = ChangeEmerging
		} else if growth < -growthThreshold {
			changeType = ChangeDeclining
		}

		changes = append(changes, RuleChange{Rule: rule, ChangeType: changeType, GrowthRate: growth})
	}
	return changes
}

// ratioGrowth special-cases a zero baseline so no NaN can escape: a rule
// that previously had zero support/confidence counts as maximal growth.
func ratioGrowth(current, previous float64) float64 {
	if previous == 0 {
		return math.Inf(1)
	}
	return (current - previous) / previous
}
