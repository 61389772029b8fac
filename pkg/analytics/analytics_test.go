package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseolee/cryptolens/pkg/graph"
)

func triangleGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Name: "Alpha", Group: graph.GroupInfluencer, Followers: 100},
			{ID: "b", Name: "Beta", Group: graph.GroupInfluencer, Followers: 200},
			{ID: "c", Name: "Gamma", Group: graph.GroupProject, Followers: 300},
		},
		Links: []graph.Link{
			{Source: "a", Target: "b", Type: graph.LinkFollows, Value: 5},
			{Source: "b", Target: "c", Type: graph.LinkFollows, Value: 5},
			{Source: "c", Target: "a", Type: graph.LinkFollows, Value: 5},
		},
	}
}

func TestCentralityTriangle(t *testing.T) {
	g := triangleGraph()

	for _, n := range g.Nodes {
		assert.InDelta(t, 2, DegreeCentrality(n.ID, g.Links), 1e-9, "node %s", n.ID)
		assert.InDelta(t, 1.0, BetweennessCentrality(n.ID, len(g.Nodes), g.Links), 1e-9, "node %s", n.ID)
		assert.InDelta(t, 1.0, ClosenessCentrality(n.ID, len(g.Nodes), g.Links), 1e-9, "node %s", n.ID)
	}
}

func TestCentralityDegenerate(t *testing.T) {
	links := []graph.Link{{Source: "a", Target: "b", Type: graph.LinkFollows, Value: 5}}

	assert.Zero(t, BetweennessCentrality("a", 2, links))
	assert.Zero(t, ClosenessCentrality("a", 1, links))
	assert.InDelta(t, 1.0, ClosenessCentrality("a", 2, links), 1e-9)
}

func TestEngagementWeights(t *testing.T) {
	links := []graph.Link{
		{Source: "x", Target: "a", Type: graph.LinkMentioned, Value: 3},
		{Source: "x", Target: "a", Type: graph.LinkRetweeted, Value: 4},
		{Source: "a", Target: "y", Type: graph.LinkQuoted, Value: 5},
		{Source: "x", Target: "y", Type: graph.LinkMentioned, Value: 3},
		{Source: "x", Target: "a", Type: graph.LinkFollows, Value: 5},
	}

	// mentions x1 + retweets x2 + quotes x1.5, links counted in either
	// direction; follows do not contribute.
	assert.InDelta(t, 1+2+1.5, Engagement("a", links), 1e-9)
	assert.InDelta(t, 1+1.5, Engagement("y", links), 1e-9)
	assert.Zero(t, Engagement("z", links))
}

func TestTopInfluencers(t *testing.T) {
	g := triangleGraph()

	top := TopInfluencers(g, MetricFollowers, 2)
	require.Len(t, top, 2)
	assert.Equal(t, "c", top[0].ID)
	assert.Equal(t, "b", top[1].ID)
}

func TestTopInfluencersStableTies(t *testing.T) {
	g := triangleGraph()

	// Every node has degree 2; ties must preserve original node order.
	top := TopInfluencers(g, MetricDegree, 10)
	require.Len(t, top, 3)
	assert.Equal(t, "a", top[0].ID)
	assert.Equal(t, "b", top[1].ID)
	assert.Equal(t, "c", top[2].ID)
}

func TestTopInfluencersIdempotent(t *testing.T) {
	g := triangleGraph()
	assert.Equal(t, TopInfluencers(g, MetricEngagement, 10), TopInfluencers(g, MetricEngagement, 10))
}

func TestComputeNodeAnalyticsPreservesOrder(t *testing.T) {
	g := triangleGraph()

	nodes := ComputeNodeAnalytics(g)
	require.Len(t, nodes, 3)
	for i, n := range g.Nodes {
		assert.Equal(t, n.ID, nodes[i].ID)
	}
}
