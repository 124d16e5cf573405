package constellation

import (
	"fmt"

	"github.com/katalvlaran/constellations/point"
)

// Compute partitions points into constellations using the algorithm selected
// by opts (MethodMerge unless overridden).
//
//   - MethodMerge:     NewClusterer(points, opts...).Run(), then Groups().
//   - MethodUnionFind: UnionFind(points, threshold).
//   - MethodBFS:       BFS(points, threshold).
//   - MethodGraph:     Graph(points, threshold).
//
// All methods return the same partition as unordered sets of points.
//
// Errors:
//   - ErrNegativeThreshold if Threshold < 0.
//   - ErrUnknownMethod     for any other Method value.
func Compute(points []point.Point, opts ...Option) ([][]point.Point, error) {
	o := buildOptions(opts)
	if err := o.validate(); err != nil {
		return nil, err
	}

	switch o.Method {
	case MethodMerge:
		c, err := NewClusterer(points, opts...)
		if err != nil {
			return nil, err
		}
		c.Run()

		return c.Groups(), nil
	case MethodUnionFind:
		return UnionFind(points, o.Threshold), nil
	case MethodBFS:
		return BFS(points, o.Threshold), nil
	case MethodGraph:
		return Graph(points, o.Threshold), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, o.Method)
	}
}

// Count returns the number of constellations in points.
// It accepts the same options and returns the same errors as Compute.
func Count(points []point.Point, opts ...Option) (int, error) {
	groups, err := Compute(points, opts...)
	if err != nil {
		return 0, err
	}

	return len(groups), nil
}
