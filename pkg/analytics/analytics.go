// Package analytics computes per-node metrics, community partitions and
// connection recommendations over a validated account graph.
package analytics

import (
	"sort"

	"github.com/minseolee/cryptolens/pkg/graph"
)

// Metric selects the ranking dimension for TopInfluencers.
type Metric string

const (
	MetricFollowers   Metric = "followers"
	MetricEngagement  Metric = "engagement"
	MetricDegree      Metric = "degreeCentrality"
	MetricBetweenness Metric = "betweennessCentrality"
	MetricCloseness   Metric = "closenessCentrality"
)

// NodeAnalytics is a node with its derived metrics for one analytics pass.
type NodeAnalytics struct {
	graph.Node
	Engagement            float64 `json:"engagement"`
	DegreeCentrality      float64 `json:"degreeCentrality"`
	BetweennessCentrality float64 `json:"betweennessCentrality"`
	ClosenessCentrality   float64 `json:"closenessCentrality"`
	Community             int     `json:"community"`
}

// Engagement is the weighted count of interaction links touching the node:
// mentions x1, retweets x2, quotes x1.5. The count is directionless; this
// matches the historical formula and must not be "corrected" to a true
// directed engagement score, since consumers depend on the ranking.
func Engagement(nodeID string, links []graph.Link) float64 {
	var mentions, retweets, quotes int
	for _, l := range links {
		if l.Source != nodeID && l.Target != nodeID {
			continue
		}
		switch l.Type {
		case graph.LinkMentioned:
			mentions++
		case graph.LinkRetweeted:
			retweets++
		case graph.LinkQuoted:
			quotes++
		}
	}
	return float64(mentions)*1 + float64(retweets)*2 + float64(quotes)*1.5
}

// DegreeCentrality counts links touching the node, either direction.
func DegreeCentrality(nodeID string, links []graph.Link) float64 {
	count := 0
	for _, l := range links {
		if l.Source == nodeID || l.Target == nodeID {
			count++
		}
	}
	return float64(count)
}

// BetweennessCentrality is a degree-based O(1) approximation, not Brandes'
// algorithm: degree / (totalNodes - 1). Useful for rank ordering only.
func BetweennessCentrality(nodeID string, totalNodes int, links []graph.Link) float64 {
	if totalNodes <= 2 {
		return 0
	}
	return DegreeCentrality(nodeID, links) / float64(totalNodes-1)
}

// ClosenessCentrality is the same degree-based approximation as
// BetweennessCentrality, with a different degenerate cutoff.
func ClosenessCentrality(nodeID string, totalNodes int, links []graph.Link) float64 {
	if totalNodes <= 1 {
		return 0
	}
	return DegreeCentrality(nodeID, links) / float64(totalNodes-1)
}

// ComputeNodeAnalytics derives the metric set for every node, preserving
// node order. Community is left at zero; DetectCommunities fills it.
func ComputeNodeAnalytics(g graph.Graph) []NodeAnalytics {
	result := make([]NodeAnalytics, len(g.Nodes))
	total := len(g.Nodes)
	for i, n := range g.Nodes {
		result[i] = NodeAnalytics{
			Node:                  n,
			Engagement:            Engagement(n.ID, g.Links),
			DegreeCentrality:      DegreeCentrality(n.ID, g.Links),
			BetweennessCentrality: BetweennessCentrality(n.ID, total, g.Links),
			ClosenessCentrality:   ClosenessCentrality(n.ID, total, g.Links),
		}
	}
	return result
}

// TopInfluencers ranks nodes by the chosen metric, descending, ties broken
// by original node order.
func TopInfluencers(g graph.Graph, metric Metric, limit int) []NodeAnalytics {
	if limit <= 0 {
		limit = 10
	}

	ranked := ComputeNodeAnalytics(g)
	sort.SliceStable(ranked, func(i, j int) bool {
		return metricValue(ranked[i], metric) > metricValue(ranked[j], metric)
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

func metricValue(n NodeAnalytics, metric Metric) float64 {
	switch metric {
	case MetricEngagement:
		return n.Engagement
	case MetricDegree:
		return n.DegreeCentrality
	case MetricBetweenness:
		return n.BetweennessCentrality
	case MetricCloseness:
		return n.ClosenessCentrality
	default:
		return float64(n.Followers)
	}
}
