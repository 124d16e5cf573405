package constellation

import (
	"sort"

	"github.com/katalvlaran/constellations/point"
)

// BFS collects constellations one at a time: from each unvisited point it
// walks the implicit threshold graph breadth-first, queueing every unvisited
// point within threshold of the current one.
//
// Groups are returned in order of their first point's input index; points
// inside a group are in input order.
//
// Complexity: O(n²) time, O(n) memory.
func BFS(points []point.Point, threshold int64) [][]point.Point {
	n := len(points)
	seen := make([]bool, n)
	var comps [][]point.Point

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for v := 0; v < n; v++ {
				if seen[v] || !points[u].Within(points[v], threshold) {
					continue
				}
				seen[v] = true
				queue = append(queue, v)
			}
		}
		comps = append(comps, collect(points, queue))
	}

	return comps
}

// collect returns points[idx...] in ascending index order.
func collect(points []point.Point, idx []int) []point.Point {
	sorted := make([]int, len(idx))
	copy(sorted, idx)
	sort.Ints(sorted)
	out := make([]point.Point, len(sorted))
	for k, i := range sorted {
		out[k] = points[i]
	}

	return out
}
