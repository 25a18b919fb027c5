package mesh_test

import (
	"testing"

	"github.com/katalvlaran/relief/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_BadOrder verifies that non-positive node counts are rejected.
func TestNew_BadOrder(t *testing.T) {
	_, err := mesh.New(0)
	assert.ErrorIs(t, err, mesh.ErrBadOrder, "n=0 must be rejected")

	_, err = mesh.New(-3)
	assert.ErrorIs(t, err, mesh.ErrBadOrder, "negative n must be rejected")
}

// TestAddEdge_Symmetry checks that an edge is visible from both endpoints.
func TestAddEdge_Symmetry(t *testing.T) {
	g, err := mesh.New(4)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(1, 3))

	n1, err := g.Neighbors(1)
	require.NoError(t, err)
	n3, err := g.Neighbors(3)
	require.NoError(t, err)

	assert.Equal(t, []int{3}, n1)
	assert.Equal(t, []int{1}, n3)
}

// TestAddEdge_DuplicatesAndSelfLoops checks dedup and self-loop skipping.
func TestAddEdge_DuplicatesAndSelfLoops(t *testing.T) {
	g, err := mesh.New(3)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 0)) // duplicate, reversed
	require.NoError(t, g.AddEdge(0, 1)) // duplicate, same order
	require.NoError(t, g.AddEdge(2, 2)) // self-loop, ignored

	n0, _ := g.Neighbors(0)
	n2, _ := g.Neighbors(2)
	assert.Equal(t, []int{1}, n0, "duplicate edges must collapse")
	assert.Empty(t, n2, "self-loop must not create a neighbor")

	d2, err := g.Degree(2)
	require.NoError(t, err)
	assert.Zero(t, d2, "node 2 remains an island")
}

// TestAddEdge_Range verifies out-of-range endpoints error.
func TestAddEdge_Range(t *testing.T) {
	g, err := mesh.New(2)
	require.NoError(t, err)

	assert.ErrorIs(t, g.AddEdge(-1, 0), mesh.ErrNodeRange)
	assert.ErrorIs(t, g.AddEdge(0, 2), mesh.ErrNodeRange)
}

// TestNeighbors_Sorted verifies neighbor lists stay ascending regardless
// of insertion order.
func TestNeighbors_Sorted(t *testing.T) {
	g, err := mesh.FromEdges(5, [][2]int{{2, 4}, {2, 0}, {2, 3}, {2, 1}})
	require.NoError(t, err)

	n2, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 4}, n2)
}

// TestFromEdges_Invalid verifies FromEdges propagates construction errors.
func TestFromEdges_Invalid(t *testing.T) {
	_, err := mesh.FromEdges(3, [][2]int{{0, 5}})
	assert.ErrorIs(t, err, mesh.ErrNodeRange)
}

// TestNeighbors_Range verifies index validation on queries.
func TestNeighbors_Range(t *testing.T) {
	g, err := mesh.New(1)
	require.NoError(t, err)

	_, err = g.Neighbors(1)
	assert.ErrorIs(t, err, mesh.ErrNodeRange)

	_, err = g.Degree(-1)
	assert.ErrorIs(t, err, mesh.ErrNodeRange)
}
