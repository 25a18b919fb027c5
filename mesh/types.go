// Package mesh defines the Graph type and sentinel errors for the
// connectivity structure of github.com/katalvlaran/relief.
package mesh

import "errors"

// Sentinel errors for mesh construction.
var (
	// ErrBadOrder indicates the requested node count is not positive.
	ErrBadOrder = errors.New("mesh: node count must be positive")

	// ErrNodeRange indicates an edge endpoint outside the valid index range.
	ErrNodeRange = errors.New("mesh: node index out of range")
)

// Graph is a sparse, symmetric adjacency relation over nodes 0..n-1.
//
// A Graph is built with New/FromEdges plus AddEdge and is treated as
// immutable once handed to an engine. Self-loops are ignored and duplicate
// edges are stored once. Neighbor lists stay sorted ascending at all times,
// which downstream sweeps rely on for deterministic traversal order.
type Graph struct {
	n   int     // number of nodes
	adj [][]int // adj[i] = sorted neighbor indices of node i
}
