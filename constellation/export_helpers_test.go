package constellation

import "github.com/katalvlaran/constellations/point"

// pointsAlongX returns points on the x axis at the given offsets.
func pointsAlongX(xs ...int64) []point.Point {
	out := make([]point.Point, len(xs))
	for i, x := range xs {
		out[i] = point.New(x, 0, 0, 0)
	}

	return out
}
