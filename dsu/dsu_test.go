package dsu_test

import (
	"testing"

	"github.com/katalvlaran/layerorder/dsu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDSU_SingletonsInitiallyDisjoint verifies that a fresh DSU(n) starts
// with every element in its own singleton set.
func TestDSU_SingletonsInitiallyDisjoint(t *testing.T) {
	d := dsu.New(5)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if i == j {
				continue
			}
			assert.False(t, d.Connected(i, j), "elements %d and %d must start disjoint", i, j)
		}
	}
}

// TestDSU_JoinMergesTransitively verifies that chained Join calls produce
// a single connected component, regardless of join order.
func TestDSU_JoinMergesTransitively(t *testing.T) {
	d := dsu.New(6)
	d.Join(0, 1)
	d.Join(1, 2)
	d.Join(4, 5)

	require.True(t, d.Connected(0, 2), "0 and 2 should be merged transitively via 1")
	assert.True(t, d.Connected(4, 5))
	assert.False(t, d.Connected(2, 4), "disjoint components must remain disjoint")

	d.Join(2, 4)
	assert.True(t, d.Connected(0, 5), "merging components must unify all members")
}

// TestDSU_JoinIsIdempotent verifies re-joining an already-merged pair is a no-op.
func TestDSU_JoinIsIdempotent(t *testing.T) {
	d := dsu.New(3)
	d.Join(0, 1)
	root := d.Find(0)
	d.Join(0, 1)
	assert.Equal(t, root, d.Find(0))
}
