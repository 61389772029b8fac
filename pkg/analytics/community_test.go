package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseolee/cryptolens/pkg/graph"
)

// assertTotalPartition checks every input node got exactly one community.
func assertTotalPartition(t *testing.T, g graph.Graph, result CommunityResult) {
	t.Helper()
	require.Len(t, result.NodeAnalytics, len(g.Nodes))

	seen := make(map[string]bool)
	size := 0
	for _, n := range result.NodeAnalytics {
		assert.False(t, seen[n.ID], "node %s assigned twice", n.ID)
		seen[n.ID] = true
	}
	for _, c := range result.Communities {
		size += c.Size
	}
	assert.Equal(t, len(g.Nodes), size)
}

func TestDetectCommunitiesModularity(t *testing.T) {
	// Two weighted triangles joined by a single weak bridge.
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Group: graph.GroupInfluencer, Followers: 10},
			{ID: "b", Group: graph.GroupInfluencer, Followers: 20},
			{ID: "c", Group: graph.GroupInfluencer, Followers: 30},
			{ID: "d", Group: graph.GroupProject, Followers: 40},
			{ID: "e", Group: graph.GroupProject, Followers: 50},
			{ID: "f", Group: graph.GroupProject, Followers: 60},
		},
		Links: []graph.Link{
			{Source: "a", Target: "b", Type: graph.LinkFollows, Value: 5},
			{Source: "b", Target: "c", Type: graph.LinkFollows, Value: 5},
			{Source: "c", Target: "a", Type: graph.LinkFollows, Value: 5},
			{Source: "d", Target: "e", Type: graph.LinkFollows, Value: 5},
			{Source: "e", Target: "f", Type: graph.LinkFollows, Value: 5},
			{Source: "f", Target: "d", Type: graph.LinkFollows, Value: 5},
			{Source: "c", Target: "d", Type: graph.LinkFollows, Value: 1},
		},
	}

	result := DetectCommunities(g)
	assert.Equal(t, PartitionModularity, result.Method)
	assert.Equal(t, FallbackNone, result.Reason)
	assertTotalPartition(t, g, result)

	// The two triangles should land in different communities.
	byID := make(map[string]int)
	for _, n := range result.NodeAnalytics {
		byID[n.ID] = n.Community
	}
	assert.Equal(t, byID["a"], byID["b"])
	assert.Equal(t, byID["b"], byID["c"])
	assert.Equal(t, byID["d"], byID["e"])
	assert.Equal(t, byID["e"], byID["f"])
	assert.NotEqual(t, byID["a"], byID["d"])
}

func TestDetectCommunitiesComponentFallback(t *testing.T) {
	// Zero-weight links degenerate the modularity pass; connected
	// components take over.
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Group: graph.GroupInfluencer},
			{ID: "b", Group: graph.GroupInfluencer},
			{ID: "c", Group: graph.GroupProject},
		},
		Links: []graph.Link{
			{Source: "a", Target: "b", Type: graph.LinkFollows, Value: 0},
		},
	}

	result := DetectCommunities(g)
	assert.Equal(t, PartitionComponents, result.Method)
	assert.Equal(t, FallbackDegenerateGraph, result.Reason)
	assertTotalPartition(t, g, result)

	byID := make(map[string]int)
	for _, n := range result.NodeAnalytics {
		byID[n.ID] = n.Community
	}
	assert.Equal(t, byID["a"], byID["b"])
	assert.NotEqual(t, byID["a"], byID["c"])
}

func TestDetectCommunitiesNoLinks(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Group: graph.GroupInfluencer},
			{ID: "b", Group: graph.GroupProject},
		},
	}

	result := DetectCommunities(g)
	assertTotalPartition(t, g, result)

	// Isolated nodes form singleton components.
	byID := make(map[string]int)
	for _, n := range result.NodeAnalytics {
		byID[n.ID] = n.Community
	}
	assert.NotEqual(t, byID["a"], byID["b"])
}

func TestDetectCommunitiesEmptyGraph(t *testing.T) {
	result := DetectCommunities(graph.Graph{})

	assert.Empty(t, result.NodeAnalytics)
	assert.Empty(t, result.Communities)
	assert.Equal(t, PartitionGroups, result.Method)
	assert.Equal(t, FallbackNoNodes, result.Reason)
}

func TestDetectCommunitiesDropsDanglingLinks(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Group: graph.GroupInfluencer},
			{ID: "b", Group: graph.GroupInfluencer},
		},
		Links: []graph.Link{
			{Source: "a", Target: "b", Type: graph.LinkFollows, Value: 5},
			{Source: "a", Target: "ghost", Type: graph.LinkFollows, Value: 5},
		},
	}

	result := DetectCommunities(g)
	assertTotalPartition(t, g, result)
	for _, n := range result.NodeAnalytics {
		// Degree must only count the surviving link.
		assert.InDelta(t, 1, n.DegreeCentrality, 1e-9, "node %s", n.ID)
	}
}

func TestCommunityStats(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "a", Name: "A", Group: graph.GroupInfluencer, Followers: 100},
			{ID: "b", Name: "B", Group: graph.GroupInfluencer, Followers: 400},
			{ID: "c", Name: "C", Group: graph.GroupProject, Followers: 200},
			{ID: "d", Name: "D", Group: graph.GroupProject, Followers: 300},
		},
		Links: []graph.Link{
			{Source: "a", Target: "b", Type: graph.LinkFollows, Value: 5},
			{Source: "b", Target: "c", Type: graph.LinkFollows, Value: 5},
			{Source: "c", Target: "d", Type: graph.LinkFollows, Value: 5},
			{Source: "d", Target: "a", Type: graph.LinkFollows, Value: 5},
		},
	}

	result := DetectCommunities(g)
	require.NotEmpty(t, result.Communities)

	for _, c := range result.Communities {
		assert.LessOrEqual(t, len(c.TopNodes), 3)
		// Top nodes sorted by followers descending.
		for i := 1; i < len(c.TopNodes); i++ {
			assert.GreaterOrEqual(t, c.TopNodes[i-1].Followers, c.TopNodes[i].Followers)
		}
		assert.Positive(t, c.AvgFollowers)
		assert.NotEmpty(t, c.DominantGroup)
	}
}

func TestDominantGroupTieBreak(t *testing.T) {
	// Equal group counts resolve to the group first encountered.
	nodes := []NodeAnalytics{
		{Node: graph.Node{ID: "a", Group: graph.GroupProject}, Community: 0},
		{Node: graph.Node{ID: "b", Group: graph.GroupInfluencer}, Community: 0},
	}

	infos := communityStats(nodes)
	require.Len(t, infos, 1)
	assert.Equal(t, graph.GroupProject, infos[0].DominantGroup)
}
