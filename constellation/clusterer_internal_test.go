// File: constellation/clusterer_internal_test.go
package constellation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestStep_MergesWithoutValidation checks that the scan path performs the same
// absorb-then-swap-remove as Merge and still reports through OnMerge.
func TestStep_MergesWithoutValidation(t *testing.T) {
	var calls [][3]int
	c, err := NewClusterer(pointsAlongX(0, 20, 3, 40), WithOnMerge(func(s, a, remaining int) {
		calls = append(calls, [3]int{s, a, remaining})
	}))
	require.NoError(t, err)

	require.True(t, c.Step())
	assert.Equal(t, [][3]int{{0, 2, 3}}, calls)
	assert.Equal(t, 1, c.Merges())
	require.Len(t, c.groups, 3)
	assert.Equal(t, pointsAlongX(0, 3), c.groups[0].points)
	assert.Equal(t, pointsAlongX(20), c.groups[1].points)
	assert.Equal(t, pointsAlongX(40), c.groups[2].points)
	assert.False(t, c.Step())

	// Checked and unchecked paths leave identical state.
	a, _ := NewClusterer(pointsAlongX(0, 1, 2, 3))
	b, _ := NewClusterer(pointsAlongX(0, 1, 2, 3))
	require.NoError(t, a.Merge(3, 1))
	b.merge(3, 1)
	assert.Equal(t, a.Groups(), b.Groups())
	assert.Equal(t, a.Merges(), b.Merges())
}
