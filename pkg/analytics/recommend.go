package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/minseolee/cryptolens/pkg/graph"
)

// RecommendedConnection is a friend-of-friend suggestion with a
// human-readable reason.
type RecommendedConnection struct {
	Node              graph.Node   `json:"node"`
	Score             float64      `json:"score"`
	CommonConnections []graph.Node `json:"commonConnections"`
	Reason            string       `json:"reason"`
}

// RecommendConnections suggests accounts two hops away from nodeID,
// scored by distinct common-neighbor paths and follower count. Calling it
// twice on the same graph returns the same ordered list.
func RecommendConnections(g graph.Graph, nodeID string, limit int) []RecommendedConnection {
	if limit <= 0 {
		limit = 5
	}

	nodeByID := make(map[string]*graph.Node, len(g.Nodes))
	for i := range g.Nodes {
		nodeByID[g.Nodes[i].ID] = &g.Nodes[i]
	}

	// Direct neighbors in link order, deduplicated.
	direct := make(map[string]bool)
	var directOrder []string
	for _, l := range g.Links {
		var other string
		if l.Source == nodeID {
			other = l.Target
		} else if l.Target == nodeID {
			other = l.Source
		} else {
			continue
		}
		if !direct[other] {
			direct[other] = true
			directOrder = append(directOrder, other)
		}
	}

	type candidate struct {
		node   *graph.Node
		common []graph.Node
		paths  int
	}
	candidates := make(map[string]*candidate)
	var candidateOrder []string

	for _, neighborID := range directOrder {
		for _, l := range g.Links {
			var secondID string
			if l.Source == neighborID && l.Target != nodeID && !direct[l.Target] {
				secondID = l.Target
			} else if l.Target == neighborID && l.Source != nodeID && !direct[l.Source] {
				secondID = l.Source
			} else {
				continue
			}

			secondNode := nodeByID[secondID]
			neighborNode := nodeByID[neighborID]
			if secondNode == nil || neighborNode == nil {
				continue
			}

			c, ok := candidates[secondID]
			if !ok {
				c = &candidate{node: secondNode}
				candidates[secondID] = c
				candidateOrder = append(candidateOrder, secondID)
			}
			c.common = append(c.common, *neighborNode)
			c.paths++
		}
	}

	recs := make([]RecommendedConnection, 0, len(candidateOrder))
	for _, id := range candidateOrder {
		c := candidates[id]
		score := float64(c.paths) * 10
		if c.node.Followers > 0 {
			score += math.Log10(float64(c.node.Followers)) * 5
		}
		recs = append(recs, RecommendedConnection{
			Node:              *c.node,
			Score:             score,
			CommonConnections: c.common,
			Reason:            recommendationReason(*c.node, len(c.common)),
		})
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func recommendationReason(node graph.Node, mutual int) string {
	plural := ""
	if mutual > 1 {
		plural = "s"
	}
	reason := fmt.Sprintf("%d mutual connection%s", mutual, plural)

	switch {
	case node.Group == graph.GroupKOL:
		reason += ", Key Opinion Leader in crypto"
	case node.Group == graph.GroupProject:
		reason += ", Blockchain project"
	case node.Followers > 100000:
		reason += ", Popular account"
	}
	return reason
}
