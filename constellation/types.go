// Package constellation defines configuration options and sentinel errors for
// constellation clustering.
package constellation

import "errors"

// DefaultThreshold is the linking distance: two points at Manhattan distance
// ≤ DefaultThreshold belong to the same constellation.
const DefaultThreshold int64 = 3

// Sentinel errors for constellation operations.
var (
	// ErrGroupIndex indicates a Merge index outside [0, Len()).
	ErrGroupIndex = errors.New("constellation: group index out of range")

	// ErrSameGroup indicates Merge was asked to merge a group into itself.
	ErrSameGroup = errors.New("constellation: cannot merge a group with itself")

	// ErrUnknownMethod indicates an unsupported Options.Method.
	ErrUnknownMethod = errors.New("constellation: unknown method")

	// ErrNegativeThreshold indicates Options.Threshold < 0.
	ErrNegativeThreshold = errors.New("constellation: threshold must be non-negative")
)

// MethodMerge selects the scan-and-merge Clusterer.
const MethodMerge = "merge"

// MethodUnionFind selects the disjoint-set strategy.
const MethodUnionFind = "unionfind"

// MethodBFS selects queue-based component collection.
const MethodBFS = "bfs"

// MethodGraph selects the gonum graph strategy.
const MethodGraph = "graph"

// Methods lists every supported Method value.
var Methods = []string{MethodMerge, MethodUnionFind, MethodBFS, MethodGraph}

// Options configures clustering.
// Use DefaultOptions() to get Threshold = DefaultThreshold and Method = MethodMerge.
type Options struct {
	// Threshold is the inclusive linking distance.
	Threshold int64

	// Method selects the algorithm used by Compute and Count.
	Method string

	// OnMerge, if non-nil, is called by the Clusterer after every merge with the
	// surviving group's index, the absorbed group's index (both as they were
	// before the merge) and the number of groups remaining.
	// It is ignored by the other methods.
	OnMerge func(survivor, absorbed, remaining int)
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Options{Threshold: DefaultThreshold, Method: MethodMerge}.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Method:    MethodMerge,
	}
}

// WithThreshold returns an Option that sets the linking distance.
func WithThreshold(d int64) Option {
	return func(o *Options) {
		o.Threshold = d
	}
}

// WithMethod returns an Option that selects the algorithm.
// Allowed values: MethodMerge, MethodUnionFind, MethodBFS, MethodGraph.
func WithMethod(m string) Option {
	return func(o *Options) {
		o.Method = m
	}
}

// WithOnMerge returns an Option that installs a merge observer on the Clusterer.
func WithOnMerge(fn func(survivor, absorbed, remaining int)) Option {
	return func(o *Options) {
		o.OnMerge = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o Options) validate() error {
	if o.Threshold < 0 {
		return ErrNegativeThreshold
	}

	return nil
}
