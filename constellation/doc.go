// Package constellation partitions 4-dimensional integer points into
// "constellations": maximal groups in which every point is reachable from
// every other through a chain of hops of Manhattan distance ≤ Threshold.
//
// What & Why
//
//   - A constellation is a connected component of the implicit graph whose
//     vertices are the input points and whose edges join every pair of points
//     within Threshold (3 by default) of each other.
//
//   - The result is the transitive closure of "within threshold", so it does not
//     depend on input order or on the order in which linked groups are merged.
//
// Algorithms Provided
//
//   - Clusterer (MethodMerge, default)
//
//   - Strategy: start with one singleton Group per point. Repeatedly scan all
//     group pairs (i < j) in ascending order; merge the first connected pair
//     and restart the scan. Stop when a full pass finds no connected pair.
//
//   - Complexity: O(g³) pair checks in the worst case (g = initial groups), each
//     check O(|A|·|B|). Intended for small inputs.
//
//   - UnionFind (MethodUnionFind)
//
//   - Strategy: disjoint set over point indices with path compression and
//     union by rank; every pair within Threshold is unioned.
//
//   - Complexity: O(n²·α(n)) time, O(n) memory.
//
//   - BFS (MethodBFS)
//
//   - Strategy: grow one component at a time from each unvisited point, queueing
//     every unvisited point within Threshold.
//
//   - Complexity: O(n²) time, O(n) memory.
//
//   - Graph (MethodGraph)
//
//   - Strategy: materialize the threshold graph as a gonum simple.UndirectedGraph
//     and partition it with topo.ConnectedComponents.
//
//   - Complexity: O(n²) to build, O(n + E) to partition, O(n + E) memory.
//
// Determinism
//
//	UnionFind, BFS and Graph return groups ordered by their first input index,
//	with points in input order. The Clusterer keeps swap-remove order, so its
//	groups are the same sets but may be listed in a different order.
//
// Errors
//
//   - ErrGroupIndex:        Merge index out of range.
//   - ErrSameGroup:         Merge asked to merge a group with itself.
//   - ErrUnknownMethod:     Compute called with an unsupported Method.
//   - ErrNegativeThreshold: Threshold < 0.
//
// Concurrency
//
//	Everything here is synchronous. A Clusterer is owned by a single goroutine
//	and is not safe for concurrent use.
package constellation
