package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseolee/cryptolens/pkg/graph"
)

func recommendationGraph() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "me", Name: "Me", Group: graph.GroupSeed, Followers: 500},
			{ID: "n1", Name: "NeighborOne", Group: graph.GroupInfluencer, Followers: 1000},
			{ID: "n2", Name: "NeighborTwo", Group: graph.GroupInfluencer, Followers: 1000},
			{ID: "fof", Name: "FriendOfFriend", Group: graph.GroupInfluencer, Followers: 10000},
			{ID: "proj", Name: "ChainProject", Group: graph.GroupProject, Followers: 100},
			{ID: "star", Name: "Celebrity", Group: graph.GroupInfluencer, Followers: 500000},
		},
		Links: []graph.Link{
			{Source: "me", Target: "n1", Type: graph.LinkFollows, Value: 5},
			{Source: "me", Target: "n2", Type: graph.LinkFollows, Value: 5},
			{Source: "n1", Target: "fof", Type: graph.LinkFollows, Value: 5},
			{Source: "n2", Target: "fof", Type: graph.LinkFollows, Value: 5},
			{Source: "n1", Target: "proj", Type: graph.LinkFollows, Value: 5},
			{Source: "n2", Target: "star", Type: graph.LinkFollows, Value: 5},
		},
	}
}

func TestRecommendConnections(t *testing.T) {
	g := recommendationGraph()

	recs := RecommendConnections(g, "me", 5)
	require.Len(t, recs, 3)

	// fof is reachable through both neighbors: 2 paths.
	assert.Equal(t, "fof", recs[0].Node.ID)
	assert.InDelta(t, 2*10+math.Log10(10000)*5, recs[0].Score, 1e-9)
	assert.Len(t, recs[0].CommonConnections, 2)
	assert.Equal(t, "2 mutual connections", recs[0].Reason)

	for _, r := range recs[1:] {
		assert.InDelta(t, 1*10+math.Log10(float64(r.Node.Followers))*5, r.Score, 1e-9)
	}
}

func TestRecommendConnectionsReasons(t *testing.T) {
	g := recommendationGraph()
	recs := RecommendConnections(g, "me", 5)

	byID := make(map[string]RecommendedConnection)
	for _, r := range recs {
		byID[r.Node.ID] = r
	}

	assert.Equal(t, "1 mutual connection, Blockchain project", byID["proj"].Reason)
	assert.Equal(t, "1 mutual connection, Popular account", byID["star"].Reason)
}

func TestRecommendConnectionsExcludesSelfAndDirect(t *testing.T) {
	g := recommendationGraph()
	recs := RecommendConnections(g, "me", 10)

	for _, r := range recs {
		assert.NotEqual(t, "me", r.Node.ID)
		assert.NotEqual(t, "n1", r.Node.ID)
		assert.NotEqual(t, "n2", r.Node.ID)
	}
}

func TestRecommendConnectionsIdempotent(t *testing.T) {
	g := recommendationGraph()
	assert.Equal(t, RecommendConnections(g, "me", 5), RecommendConnections(g, "me", 5))
}

func TestRecommendConnectionsLimit(t *testing.T) {
	g := recommendationGraph()
	recs := RecommendConnections(g, "me", 1)
	require.Len(t, recs, 1)
	assert.Equal(t, "fof", recs[0].Node.ID)
}

func TestRecommendConnectionsZeroFollowers(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{
			{ID: "me"},
			{ID: "mid"},
			{ID: "end", Followers: 0},
		},
		Links: []graph.Link{
			{Source: "me", Target: "mid", Type: graph.LinkFollows, Value: 5},
			{Source: "mid", Target: "end", Type: graph.LinkFollows, Value: 5},
		},
	}

	recs := RecommendConnections(g, "me", 5)
	require.Len(t, recs, 1)
	// log10(0) must not poison the score.
	assert.InDelta(t, 10, recs[0].Score, 1e-9)
}

func TestRecommendConnectionsUnknownNode(t *testing.T) {
	assert.Empty(t, RecommendConnections(recommendationGraph(), "ghost", 5))
}
