package constellation

import (
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/constellations/point"
)

// ThresholdGraph materializes the implicit threshold graph: node i stands for
// points[i], and an undirected edge joins i and j whenever their distance is
// ≤ threshold. Duplicate coordinates still get distinct nodes.
// Complexity: O(n²) time, O(n + E) memory.
func ThresholdGraph(points []point.Point, threshold int64) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for i := range points {
		g.AddNode(simple.Node(int64(i)))
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].Within(points[j], threshold) {
				g.SetEdge(g.NewEdge(simple.Node(int64(i)), simple.Node(int64(j))))
			}
		}
	}

	return g
}

// Graph partitions points by building ThresholdGraph and taking its
// connected components with topo.ConnectedComponents.
// Groups are ordered by their first input index; points are in input order.
func Graph(points []point.Point, threshold int64) [][]point.Point {
	comps := topo.ConnectedComponents(ThresholdGraph(points, threshold))

	// gonum yields components in map order, so normalize on node IDs.
	idx := make([][]int, len(comps))
	for k, comp := range comps {
		idx[k] = nodeIndices(comp)
	}
	sort.Slice(idx, func(a, b int) bool { return idx[a][0] < idx[b][0] })

	out := make([][]point.Point, len(idx))
	for k, ids := range idx {
		out[k] = collect(points, ids)
	}

	return out
}

// nodeIndices returns the sorted node IDs of comp as point indices.
func nodeIndices(comp []graph.Node) []int {
	ids := make([]int, len(comp))
	for k, n := range comp {
		ids[k] = int(n.ID())
	}
	sort.Ints(ids)

	return ids
}
