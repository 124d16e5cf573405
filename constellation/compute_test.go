package constellation_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/constellations/constellation"
	"github.com/katalvlaran/constellations/point"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompute_MethodsAgree checks every method yields the merge loop's partition
// on seeded random charts of varying density.
func TestCompute_MethodsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 8; round++ {
		points := randomPoints(r, 20+round*15, int64(3+round))
		want, err := constellation.Compute(points)
		require.NoError(t, err)
		want = canonical(want)

		for _, m := range constellation.Methods {
			t.Run(fmt.Sprintf("round%d/%s", round, m), func(t *testing.T) {
				got, err := constellation.Compute(points, constellation.WithMethod(m))
				require.NoError(t, err)
				if diff := cmp.Diff(want, canonical(got)); diff != "" {
					t.Errorf("%s partition mismatch (-merge +%s):\n%s", m, m, diff)
				}
			})
		}
	}
}

// TestCompute_Scenarios checks the reference counts for every method.
func TestCompute_Scenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		points []point.Point
		want   int
	}{
		{"Distance3", pts([4]int64{0, 0, 0, 0}, [4]int64{3, 0, 0, 0}), 1},
		{"Distance4", pts([4]int64{0, 0, 0, 0}, [4]int64{4, 0, 0, 0}), 2},
		{"Chain", pts([4]int64{0, 0, 0, 0}, [4]int64{3, 0, 0, 0}, [4]int64{6, 0, 0, 0}), 1},
		{"Empty", nil, 0},
		{"Single", pts([4]int64{0, 0, 0, 0}), 1},
		{"TwoClusters", pts(
			[4]int64{0, 0, 0, 0}, [4]int64{0, 0, 1, 0}, [4]int64{0, 0, 0, 1},
			[4]int64{9, 9, 9, 9}, [4]int64{9, 9, 9, 8}, [4]int64{8, 9, 9, 9},
		), 2},
	}
	for _, m := range constellation.Methods {
		for _, sc := range scenarios {
			t.Run(m+"/"+sc.name, func(t *testing.T) {
				n, err := constellation.Count(sc.points, constellation.WithMethod(m))
				require.NoError(t, err)
				assert.Equal(t, sc.want, n)
			})
		}
	}
}

// TestCompute_Ordering verifies the normalized order of the index-based methods.
func TestCompute_Ordering(t *testing.T) {
	points := pts(
		[4]int64{50, 0, 0, 0}, // group A
		[4]int64{0, 0, 0, 0},  // group B
		[4]int64{52, 0, 0, 0}, // group A
		[4]int64{1, 0, 0, 0},  // group B
	)
	want := [][]point.Point{
		{points[0], points[2]},
		{points[1], points[3]},
	}
	for _, m := range []string{constellation.MethodUnionFind, constellation.MethodBFS, constellation.MethodGraph} {
		got, err := constellation.Compute(points, constellation.WithMethod(m))
		require.NoError(t, err)
		assert.Equal(t, want, got, m)
	}
}

// TestCompute_Errors covers option validation.
func TestCompute_Errors(t *testing.T) {
	_, err := constellation.Compute(nil, constellation.WithMethod("kmeans"))
	assert.ErrorIs(t, err, constellation.ErrUnknownMethod)

	_, err = constellation.Count(nil, constellation.WithThreshold(-3), constellation.WithMethod(constellation.MethodGraph))
	assert.ErrorIs(t, err, constellation.ErrNegativeThreshold)
}

// TestThresholdGraph checks node and edge construction.
func TestThresholdGraph(t *testing.T) {
	points := pts([4]int64{0, 0, 0, 0}, [4]int64{3, 0, 0, 0}, [4]int64{6, 0, 0, 0}, [4]int64{6, 0, 0, 0})
	g := constellation.ThresholdGraph(points, constellation.DefaultThreshold)

	assert.Equal(t, 4, g.Nodes().Len())
	assert.True(t, g.HasEdgeBetween(0, 1))
	assert.True(t, g.HasEdgeBetween(1, 2))
	assert.True(t, g.HasEdgeBetween(2, 3))
	assert.False(t, g.HasEdgeBetween(0, 2))
	assert.Equal(t, 4, g.Edges().Len())
}
