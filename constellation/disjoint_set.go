package constellation

import "github.com/katalvlaran/constellations/point"

// disjointSet is a union-find forest over indices [0, n).
type disjointSet struct {
	parent []int
	rank   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

// find returns the root of u, halving the path on the way up.
func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets holding u and v by rank and reports whether they
// were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}

	return true
}

// UnionFind partitions points with a disjoint-set forest, unioning every pair
// of points within threshold.
//
// Steps:
//  1. Make one set per point index.
//  2. For every pair i < j with Distance ≤ threshold, union(i, j).
//  3. Collect indices by root, ordering groups by their smallest index.
//
// Complexity: O(n²·α(n)) time, O(n) memory.
func UnionFind(points []point.Point, threshold int64) [][]point.Point {
	n := len(points)
	ds := newDisjointSet(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i].Within(points[j], threshold) {
				ds.union(i, j)
			}
		}
	}

	slot := make(map[int]int, n) // root -> position in out
	var out [][]point.Point
	for i := 0; i < n; i++ {
		r := ds.find(i)
		k, ok := slot[r]
		if !ok {
			k = len(out)
			slot[r] = k
			out = append(out, nil)
		}
		out[k] = append(out[k], points[i])
	}

	return out
}
