package analytics

import (
	"sort"

	"github.com/minseolee/cryptolens/pkg/graph"
)

// PartitionMethod names which stage of the fallback chain produced the
// community partition.
type PartitionMethod string

const (
	PartitionModularity PartitionMethod = "modularity"
	PartitionComponents PartitionMethod = "components"
	PartitionGroups     PartitionMethod = "groups"
)

// FallbackReason explains why a partition stage was skipped.
type FallbackReason string

const (
	FallbackNone            FallbackReason = ""
	FallbackDegenerateGraph FallbackReason = "degenerate-graph"
	FallbackNoNodes         FallbackReason = "no-nodes"
)

// CommunityInfo summarizes one detected community.
type CommunityInfo struct {
	ID            int          `json:"id"`
	Size          int          `json:"size"`
	TopNodes      []graph.Node `json:"topNodes"`
	AvgFollowers  float64      `json:"avgFollowers"`
	DominantGroup string       `json:"dominantGroup"`
}

// CommunityResult is a total partition of the graph plus per-community
// statistics and provenance of which algorithm produced it.
type CommunityResult struct {
	NodeAnalytics []NodeAnalytics `json:"nodeAnalytics"`
	Communities   []CommunityInfo `json:"communities"`
	Method        PartitionMethod `json:"method"`
	Reason        FallbackReason  `json:"reason,omitempty"`
}

// DetectCommunities partitions the graph. Primary algorithm is weighted
// modularity optimization; on degenerate graphs it falls back to connected
// components, and finally to grouping by the node's classification. All
// three paths cover every node exactly once.
func DetectCommunities(g graph.Graph) CommunityResult {
	g = graph.Validate(g)

	method := PartitionModularity
	reason := FallbackNone

	assignment, err := modularityPartition(g)
	if err != nil {
		method = PartitionComponents
		reason = FallbackDegenerateGraph
		assignment = componentPartition(g)
	}
	if len(assignment) == 0 && len(g.Nodes) > 0 {
		method = PartitionGroups
		reason = FallbackNoNodes
		assignment = groupPartition(g)
	}
	if len(g.Nodes) == 0 {
		method = PartitionGroups
		reason = FallbackNoNodes
		assignment = map[string]int{}
	}

	nodes := ComputeNodeAnalytics(g)
	for i := range nodes {
		nodes[i].Community = assignment[nodes[i].ID]
	}

	return CommunityResult{
		NodeAnalytics: nodes,
		Communities:   communityStats(nodes),
		Method:        method,
		Reason:        reason,
	}
}

func modularityPartition(g graph.Graph) (map[string]int, error) {
	index := make(map[string]int, len(g.Nodes))
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		index[n.ID] = i
		ids[i] = n.ID
	}

	edges := make([]weightedEdge, 0, len(g.Links))
	for _, l := range g.Links {
		edges = append(edges, weightedEdge{a: index[l.Source], b: index[l.Target], weight: l.Value})
	}
	return louvainPartition(ids, edges)
}

// componentPartition assigns one community per connected component using
// iterative breadth-first traversal over undirected adjacency.
func componentPartition(g graph.Graph) map[string]int {
	adjacency := make(map[string][]string, len(g.Nodes))
	for _, l := range g.Links {
		adjacency[l.Source] = append(adjacency[l.Source], l.Target)
		adjacency[l.Target] = append(adjacency[l.Target], l.Source)
	}

	assignment := make(map[string]int, len(g.Nodes))
	visited := make(map[string]bool, len(g.Nodes))
	communityID := 0

	for _, n := range g.Nodes {
		if visited[n.ID] {
			continue
		}
		queue := []string{n.ID}
		visited[n.ID] = true
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			assignment[id] = communityID
			for _, next := range adjacency[id] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		communityID++
	}
	return assignment
}

// groupPartition buckets nodes strictly by their group classification.
func groupPartition(g graph.Graph) map[string]int {
	assignment := make(map[string]int, len(g.Nodes))
	groupIDs := make(map[string]int)
	next := 0
	for _, n := range g.Nodes {
		id, ok := groupIDs[n.Group]
		if !ok {
			id = next
			groupIDs[n.Group] = id
			next++
		}
		assignment[n.ID] = id
	}
	return assignment
}

// communityStats derives size, top-3 by followers, mean followers and the
// dominant group per community. Dominant-group ties resolve to the group
// first encountered in member order.
func communityStats(nodes []NodeAnalytics) []CommunityInfo {
	members := make(map[int][]NodeAnalytics)
	var order []int
	for _, n := range nodes {
		if _, ok := members[n.Community]; !ok {
			order = append(order, n.Community)
		}
		members[n.Community] = append(members[n.Community], n)
	}
	sort.Ints(order)

	infos := make([]CommunityInfo, 0, len(order))
	for _, id := range order {
		group := members[id]

		ranked := make([]NodeAnalytics, len(group))
		copy(ranked, group)
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Followers > ranked[j].Followers
		})
		topN := 3
		if len(ranked) < topN {
			topN = len(ranked)
		}
		top := make([]graph.Node, topN)
		for i := 0; i < topN; i++ {
			top[i] = ranked[i].Node
		}

		var followerSum int
		groupCounts := make(map[string]int)
		var groupOrder []string
		for _, n := range group {
			followerSum += n.Followers
			if groupCounts[n.Group] == 0 {
				groupOrder = append(groupOrder, n.Group)
			}
			groupCounts[n.Group]++
		}

		dominant := "mixed"
		maxCount := 0
		for _, gname := range groupOrder {
			if groupCounts[gname] > maxCount {
				maxCount = groupCounts[gname]
				dominant = gname
			}
		}

		infos = append(infos, CommunityInfo{
			ID:            id,
			Size:          len(group),
			TopNodes:      top,
			AvgFollowers:  float64(followerSum) / float64(len(group)),
			DominantGroup: dominant,
		})
	}
	return infos
}
