package point

// Distance returns the Manhattan (L1) distance between p and q:
// |Δx| + |Δy| + |Δz| + |Δt|.
// The result is exact for coordinates within ±MaxCoordinate.
// Complexity: O(1).
func Distance(p, q Point) int64 {
	return abs(p.X-q.X) + abs(p.Y-q.Y) + abs(p.Z-q.Z) + abs(p.T-q.T)
}

// Distance is the method form of Distance(p, q).
func (p Point) Distance(q Point) int64 {
	return Distance(p, q)
}

// Within reports whether q lies at Manhattan distance ≤ threshold from p.
func (p Point) Within(q Point, threshold int64) bool {
	return Distance(p, q) <= threshold
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
