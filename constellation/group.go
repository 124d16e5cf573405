package constellation

import "github.com/katalvlaran/constellations/point"

// Group is a non-empty collection of points that are already known to be
// transitively linked. A Group only grows, by absorbing another Group whole.
type Group struct {
	points []point.Point
}

// NewGroup returns a Group holding first followed by rest.
// Taking first separately keeps every Group non-empty.
func NewGroup(first point.Point, rest ...point.Point) *Group {
	points := make([]point.Point, 0, 1+len(rest))
	points = append(points, first)

	return &Group{points: append(points, rest...)}
}

func singleton(p point.Point) *Group {
	return &Group{points: []point.Point{p}}
}

// Len returns the number of points in g.
func (g *Group) Len() int {
	return len(g.points)
}

// Points returns a copy of the points held by g.
func (g *Group) Points() []point.Point {
	out := make([]point.Point, len(g.points))
	copy(out, g.points)

	return out
}

// IsConnected reports whether some point of other lies within threshold of
// some point of g. The scan stops at the first linked pair.
// Complexity: O(|g|·|other|).
func (g *Group) IsConnected(other *Group, threshold int64) bool {
	for _, q := range other.points {
		if g.reaches(q, threshold) {
			return true
		}
	}

	return false
}

func (g *Group) reaches(q point.Point, threshold int64) bool {
	for _, p := range g.points {
		if p.Within(q, threshold) {
			return true
		}
	}

	return false
}

func (g *Group) join(other *Group) {
	g.points = append(g.points, other.points...)
}
