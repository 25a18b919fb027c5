package isolation

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
)

// pointTol is the half-extent of the degenerate rectangle a point is
// stored as. Every entry uses the same tolerance, so nearest-neighbor
// ordering between entries is unaffected.
const pointTol = 1e-9

// entry is one inserted observation: its original index, its rank in the
// descending sweep, and its bounding rectangle.
type entry struct {
	node int
	rank int
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (e *entry) Bounds() rtreego.Rect { return e.rect }

// nnIndex is the dynamic nearest-neighbor index the sweep grows point by
// point. Exactly one writer (the sweep) touches it; queries answer in
// euclidean geometry regardless of the metric recorded on the links.
type nnIndex struct {
	tree *rtreego.Rtree
	dims int
}

// newNNIndex validates the coordinate matrix and prepares an empty index.
// Returns ErrIndexUnavailable for ragged rows or zero dimensions.
func newNNIndex(coords [][]float64) (*nnIndex, error) {
	dims := len(coords[0])
	if dims < 1 {
		return nil, fmt.Errorf("%w: zero-dimensional points", ErrIndexUnavailable)
	}
	for i, pt := range coords {
		if len(pt) != dims {
			return nil, fmt.Errorf("%w: row %d has %d dimensions, want %d", ErrIndexUnavailable, i, len(pt), dims)
		}
	}

	return &nnIndex{
		tree: rtreego.NewTree(dims, 25, 50),
		dims: dims,
	}, nil
}

// insert adds an observation at pt to the index.
func (ix *nnIndex) insert(node, rank int, pt []float64) {
	ix.tree.Insert(&entry{
		node: node,
		rank: rank,
		rect: rtreego.Point(pt).ToRect(pointTol),
	})
}

// nearest returns the already-inserted entry closest to pt.
// The index is never queried while empty.
func (ix *nnIndex) nearest(pt []float64) *entry {
	return ix.tree.NearestNeighbor(rtreego.Point(pt)).(*entry)
}
