package analytics

import (
	"errors"
	"sort"
)

// weightedEdge is an undirected weighted edge between node indices.
type weightedEdge struct {
	a, b   int
	weight float64
}

var errDegenerateGraph = errors.New("degenerate graph: no positive edge weight")

// louvainPartition assigns a community id to every node id via two-phase
// modularity optimization (local moving + aggregation). Iteration order is
// fixed so identical inputs give identical partitions. Returns an error on
// empty or weightless graphs; callers fall back to simpler partitions.
func louvainPartition(nodeIDs []string, edges []weightedEdge) (map[string]int, error) {
	n := len(nodeIDs)
	if n == 0 {
		return nil, errors.New("empty graph")
	}

	var totalWeight float64
	for _, e := range edges {
		totalWeight += e.weight
	}
	if totalWeight <= 0 {
		return nil, errDegenerateGraph
	}

	// membership[i] = community of original node i, tracked across levels.
	membership := make([]int, n)
	for i := range membership {
		membership[i] = i
	}

	curEdges := edges
	curSize := n

	for {
		assign, moved := localMove(curSize, curEdges)
		if !moved {
			break
		}

		// Renumber communities densely in node-index order.
		renumber := make(map[int]int)
		next := 0
		for i := 0; i < curSize; i++ {
			if _, ok := renumber[assign[i]]; !ok {
				renumber[assign[i]] = next
				next++
			}
		}
		for i := range assign {
			assign[i] = renumber[assign[i]]
		}

		// Fold into the original-node membership.
		for i := range membership {
			membership[i] = assign[membership[i]]
		}

		if next == curSize {
			break
		}

		// Aggregate: communities become nodes, parallel edges merge.
		merged := make(map[[2]int]float64)
		for _, e := range curEdges {
			a, b := assign[e.a], assign[e.b]
			if a > b {
				a, b = b, a
			}
			merged[[2]int{a, b}] += e.weight
		}
		keys := make([][2]int, 0, len(merged))
		for k := range merged {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i][0] != keys[j][0] {
				return keys[i][0] < keys[j][0]
			}
			return keys[i][1] < keys[j][1]
		})
		curEdges = curEdges[:0:0]
		for _, k := range keys {
			curEdges = append(curEdges, weightedEdge{a: k[0], b: k[1], weight: merged[k]})
		}
		curSize = next
	}

	result := make(map[string]int, n)
	// Dense ids in first-encounter order over the input node list.
	renumber := make(map[int]int)
	next := 0
	for i, id := range nodeIDs {
		c := membership[i]
		if _, ok := renumber[c]; !ok {
			renumber[c] = next
			next++
		}
		result[id] = renumber[c]
	}
	return result, nil
}

// localMove runs the first Louvain phase: greedily move nodes between
// communities while modularity improves.
func localMove(n int, edges []weightedEdge) ([]int, bool) {
	adj := make([]map[int]float64, n)
	for i := range adj {
		adj[i] = make(map[int]float64)
	}
	var m float64 // total edge weight
	degree := make([]float64, n)
	selfLoop := make([]float64, n)

	for _, e := range edges {
		m += e.weight
		if e.a == e.b {
			selfLoop[e.a] += e.weight
			degree[e.a] += 2 * e.weight
			continue
		}
		adj[e.a][e.b] += e.weight
		adj[e.b][e.a] += e.weight
		degree[e.a] += e.weight
		degree[e.b] += e.weight
	}

	community := make([]int, n)
	communityDegree := make([]float64, n)
	for i := 0; i < n; i++ {
		community[i] = i
		communityDegree[i] = degree[i]
	}

	movedAny := false
	for {
		movedPass := false
		for node := 0; node < n; node++ {
			cur := community[node]

			// Weight from node to each neighboring community.
			toComm := make(map[int]float64)
			for nb, w := range adj[node] {
				toComm[community[nb]] += w
			}

			communityDegree[cur] -= degree[node]

			bestComm := cur
			bestGain := 0.0

			// Deterministic candidate order.
			cands := make([]int, 0, len(toComm))
			for c := range toComm {
				cands = append(cands, c)
			}
			sort.Ints(cands)

			base := toComm[cur] - communityDegree[cur]*degree[node]/(2*m)
			for _, c := range cands {
				if c == cur {
					continue
				}
				gain := toComm[c] - communityDegree[c]*degree[node]/(2*m) - base
				if gain > bestGain {
					bestGain = gain
					bestComm = c
				}
			}

			community[node] = bestComm
			communityDegree[bestComm] += degree[node]
			if bestComm != cur {
				movedPass = true
				movedAny = true
			}
		}
		if !movedPass {
			break
		}
	}

	return community, movedAny
}
