package constellation

import "github.com/katalvlaran/constellations/point"

// Clusterer owns a partition of the input points and coarsens it by merging
// connected groups until no two groups are connected.
//
// Invariants:
//   - the groups always partition the input multiset (no point lost or duplicated);
//   - Len() never increases, and drops by exactly one on every merge.
type Clusterer struct {
	groups    []*Group
	threshold int64
	onMerge   func(survivor, absorbed, remaining int)
	merges    int
}

// NewClusterer shatters points into one singleton Group each.
// Only Threshold and OnMerge are read from opts.
//
// Errors:
//   - ErrNegativeThreshold if the configured Threshold is < 0.
//
// Complexity: O(n) time and memory.
func NewClusterer(points []point.Point, opts ...Option) (*Clusterer, error) {
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	groups := make([]*Group, 0, len(points))
	for _, p := range points {
		groups = append(groups, singleton(p))
	}

	return &Clusterer{
		groups:    groups,
		threshold: o.Threshold,
		onMerge:   o.OnMerge,
	}, nil
}

// Len returns the current number of groups.
func (c *Clusterer) Len() int {
	return len(c.groups)
}

// Merges returns how many merges have been performed so far.
func (c *Clusterer) Merges() int {
	return c.merges
}

// Threshold returns the linking distance used by Step.
func (c *Clusterer) Threshold() int64 {
	return c.threshold
}

// Groups returns a copy of the current partition, one slice per group.
func (c *Clusterer) Groups() [][]point.Point {
	out := make([][]point.Point, len(c.groups))
	for i, g := range c.groups {
		out[i] = g.Points()
	}

	return out
}

// Step scans every pair (i, j), i < j, in ascending order and merges the first
// connected pair it finds. It reports whether a merge happened; false means
// the partition is stable.
// Complexity: O(g²) group pairs per call.
func (c *Clusterer) Step() bool {
	for i := 0; i < len(c.groups); i++ {
		for j := i + 1; j < len(c.groups); j++ {
			if c.groups[i].IsConnected(c.groups[j], c.threshold) {
				c.merge(i, j)

				return true
			}
		}
	}

	return false
}

// Run steps until the partition is stable and returns the number of groups.
// Calling Run again on a stable Clusterer does no merges.
func (c *Clusterer) Run() int {
	for c.Step() {
	}

	return len(c.groups)
}

// Merge moves every point of group j into group i and removes group j by
// swapping the last group into its slot. Indices of other groups may change.
//
// Errors:
//   - ErrGroupIndex if i or j is outside [0, Len()).
//   - ErrSameGroup  if i == j.
//
// On error the partition is left untouched.
// Complexity: O(|group j|).
func (c *Clusterer) Merge(i, j int) error {
	n := len(c.groups)
	if i < 0 || i >= n || j < 0 || j >= n {
		return ErrGroupIndex
	}
	if i == j {
		return ErrSameGroup
	}
	c.merge(i, j)

	return nil
}

// merge is Merge without index checks; callers guarantee 0 ≤ i, j < Len() and i != j.
func (c *Clusterer) merge(i, j int) {
	n := len(c.groups)

	// 1. Absorb before removal so a survivor sitting in the last slot is not moved first.
	c.groups[i].join(c.groups[j])

	// 2. Swap-remove j.
	last := n - 1
	c.groups[j] = c.groups[last]
	c.groups[last] = nil
	c.groups = c.groups[:last]

	c.merges++
	if c.onMerge != nil {
		c.onMerge(i, j, len(c.groups))
	}
}
