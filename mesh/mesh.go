package mesh

import (
	"fmt"
	"sort"
)

// New returns an empty Graph over n nodes (no edges yet).
// Returns ErrBadOrder if n <= 0.
func New(n int) (*Graph, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadOrder, n)
	}

	return &Graph{
		n:   n,
		adj: make([][]int, n),
	}, nil
}

// FromEdges builds a Graph over n nodes from an undirected edge list.
// Each edge is a pair {u, v}; order within a pair does not matter.
// Returns ErrBadOrder or ErrNodeRange on invalid input.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	g, err := New(n)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// AddEdge records the undirected edge u—v.
// Self-loops (u == v) are silently ignored: a node is never its own
// neighbor. Duplicate edges are stored once.
// Returns ErrNodeRange if either endpoint is outside 0..n-1.
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n {
		return fmt.Errorf("%w: %d (order %d)", ErrNodeRange, u, g.n)
	}
	if v < 0 || v >= g.n {
		return fmt.Errorf("%w: %d (order %d)", ErrNodeRange, v, g.n)
	}
	if u == v {
		return nil
	}
	g.adj[u] = insertSorted(g.adj[u], v)
	g.adj[v] = insertSorted(g.adj[v], u)

	return nil
}

// Order returns the number of nodes n.
func (g *Graph) Order() int { return g.n }

// Degree returns the neighbor count of node i.
// Returns ErrNodeRange if i is outside 0..n-1.
func (g *Graph) Degree(i int) (int, error) {
	if i < 0 || i >= g.n {
		return 0, fmt.Errorf("%w: %d (order %d)", ErrNodeRange, i, g.n)
	}

	return len(g.adj[i]), nil
}

// Neighbors returns the sorted neighbor indices of node i.
// The returned slice is shared with the Graph — callers must not mutate it.
// Returns ErrNodeRange if i is outside 0..n-1.
func (g *Graph) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= g.n {
		return nil, fmt.Errorf("%w: %d (order %d)", ErrNodeRange, i, g.n)
	}

	return g.adj[i], nil
}

// insertSorted inserts v into the ascending slice s, skipping duplicates.
func insertSorted(s []int, v int) []int {
	pos := sort.SearchInts(s, v)
	if pos < len(s) && s[pos] == v {
		return s // already present
	}
	s = append(s, 0)
	copy(s[pos+1:], s[pos:])
	s[pos] = v

	return s
}
