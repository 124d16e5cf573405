package constellation_test

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/constellations/point"
)

// pts builds points from 4-tuples.
func pts(tuples ...[4]int64) []point.Point {
	out := make([]point.Point, len(tuples))
	for i, c := range tuples {
		out[i] = point.New(c[0], c[1], c[2], c[3])
	}

	return out
}

func lessPoint(a, b point.Point) bool {
	ca, cb := a.Coords(), b.Coords()
	for k := range ca {
		if ca[k] != cb[k] {
			return ca[k] < cb[k]
		}
	}

	return false
}

// canonical sorts points inside each group and then groups by their first
// point, so two partitions compare equal iff they hold the same sets.
func canonical(groups [][]point.Point) [][]point.Point {
	out := make([][]point.Point, len(groups))
	for i, g := range groups {
		c := make([]point.Point, len(g))
		copy(c, g)
		sort.Slice(c, func(a, b int) bool { return lessPoint(c[a], c[b]) })
		out[i] = c
	}
	sort.Slice(out, func(a, b int) bool {
		ga, gb := out[a], out[b]
		for k := 0; k < len(ga) && k < len(gb); k++ {
			if ga[k] != gb[k] {
				return lessPoint(ga[k], gb[k])
			}
		}

		return len(ga) < len(gb)
	})

	return out
}

// flatten concatenates every group.
func flatten(groups [][]point.Point) []point.Point {
	var out []point.Point
	for _, g := range groups {
		out = append(out, g...)
	}

	return out
}

// randomPoints returns n points with coordinates in [-span, span].
func randomPoints(r *rand.Rand, n int, span int64) []point.Point {
	out := make([]point.Point, n)
	for i := range out {
		c := func() int64 { return r.Int63n(2*span+1) - span }
		out[i] = point.New(c(), c(), c(), c())
	}

	return out
}
