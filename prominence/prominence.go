// Package prominence implements the descending peak-hierarchy sweep.
package prominence

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/relief/elevation"
	"github.com/katalvlaran/relief/mesh"
)

// Compute runs the prominence sweep over a 1-D field on a connectivity
// graph. values[i] is the raw field value at graph node i.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. values must be non-empty (ErrEmptyField).
//  3. len(values) must equal g.Order() (ErrShapeMismatch).
//
// The sweep itself cannot fail on well-formed inputs.
func Compute(values []float64, g *mesh.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(values) == 0 {
		return nil, ErrEmptyField
	}
	if len(values) != g.Order() {
		return nil, fmt.Errorf("%w: %d values vs %d nodes", ErrShapeMismatch, len(values), g.Order())
	}

	return run(elevation.Rescale(values), g, &cfg), nil
}

// FromPoints runs the prominence sweep over a multi-dimensional field.
// points[i] holds the k ≥ 1 raw values observed at graph node i; the
// field is first collapsed to elevations as the distance from its
// central point (center statistic, default "mean").
func FromPoints(points [][]float64, g *mesh.Graph, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if g == nil {
		return nil, ErrNilGraph
	}
	if len(points) == 0 {
		return nil, ErrEmptyField
	}
	if len(points) != g.Order() {
		return nil, fmt.Errorf("%w: %d observations vs %d nodes", ErrShapeMismatch, len(points), g.Order())
	}

	center := cfg.Center
	if center == nil {
		var err error
		if center, err = elevation.ResolveCenter(cfg.CenterName); err != nil {
			return nil, err
		}
	}
	elev, err := elevation.FromPoints(points, center)
	if err != nil {
		return nil, err
	}

	return run(elev, g, &cfg), nil
}

// sweep is the explicit state arena of one prominence run. There is
// exactly one writer — the descending loop — and every lookup is O(1)
// on a node-indexed slice, so the step ordering stays auditable.
type sweep struct {
	elev []float64
	g    *mesh.Graph

	peaks  []int     // discovered peaks, append-only, discovery order
	closed []bool    // closed[p]: peak p's prominence is settled
	prom   []float64 // per-node prominence accumulator (NaN = unassigned)
	dom    []int     // node → dominating peak (-1 = unassigned)
	pred   []int     // node → predecessor that caused its classification

	cols   []KeyCol            // merges, in resolution order
	merged map[string]struct{} // canonical candidate tuples already merged

	observe StepFunc
}

// run executes the sweep over precomputed elevations.
func run(elev []float64, g *mesh.Graph, cfg *Options) *Result {
	n := len(elev)
	s := &sweep{
		elev:    elev,
		g:       g,
		closed:  make([]bool, n),
		prom:    make([]float64, n),
		dom:     make([]int, n),
		pred:    make([]int, n),
		merged:  make(map[string]struct{}),
		observe: cfg.Observer,
	}
	for i := 0; i < n; i++ {
		s.prom[i] = math.NaN()
		s.dom[i] = -1
		s.pred[i] = -1
	}

	// Total visiting order: descending elevation, stable on ties.
	order := elevation.DescendingOrder(elev)

	// The highest node is a peak by definition; seeding it keeps the
	// "previous peak" reference well-defined from the very first step.
	s.peaks = append(s.peaks, order[0])

	for rank, node := range order {
		class := s.visit(node)
		if s.observe != nil {
			s.observe(s.snapshot(rank, node, class))
		}
	}

	return &Result{
		Prominence:     s.prom,
		Peaks:          s.peaks,
		KeyCols:        s.cols,
		DominatingPeak: s.dom,
	}
}

// visit classifies one node and applies the classification's effects.
// Each node is visited exactly once, in descending-elevation order.
func (s *sweep) visit(node int) Class {
	cands := s.candidatePeaks(node)

	class := s.classify(cands)
	switch class {
	case ClassPeak:
		s.markPeak(node)
	case ClassKeyCol:
		s.markKeyCol(node, cands)
	case ClassSlope:
		s.markSlope(node, cands)
	}

	return class
}

// classify applies the four-way rule. Branch order encodes priority:
// memoized merges first, then new peaks, then fresh merges, then slopes.
func (s *sweep) classify(cands []int) Class {
	switch {
	case s.alreadyMerged(cands):
		// This exact peak tuple met before; the node just continues the
		// joined basin downhill.
		return ClassSlope
	case len(cands) == 0:
		return ClassPeak
	case len(cands) >= 2 && s.joinsOpenPeak(cands):
		return ClassKeyCol
	default:
		return ClassSlope
	}
}

// candidatePeaks returns the distinct already-discovered peaks reachable
// through node's neighbors, in peak discovery order — the canonical
// ordering every merge is keyed on.
func (s *sweep) candidatePeaks(node int) []int {
	nbs, _ := s.g.Neighbors(node) // node index is valid by construction
	if len(nbs) == 0 {
		return nil
	}

	reachable := make(map[int]struct{}, len(nbs))
	for _, nb := range nbs {
		// Unvisited neighbors still carry the -1 sentinel and drop out;
		// visited ones all point at a peak (peaks at themselves, slopes
		// and cols at their basin's peak).
		if p := s.pred[nb]; p >= 0 {
			reachable[p] = struct{}{}
		}
	}
	if len(reachable) == 0 {
		return nil
	}

	cands := make([]int, 0, len(reachable))
	for _, p := range s.peaks {
		if _, ok := reachable[p]; ok {
			cands = append(cands, p)
		}
	}

	return cands
}

// alreadyMerged reports whether this exact ordered candidate tuple was
// recorded as a merge by an earlier key col.
func (s *sweep) alreadyMerged(cands []int) bool {
	if len(cands) < 2 {
		return false
	}
	_, ok := s.merged[tupleKey(cands)]

	return ok
}

// joinsOpenPeak reports whether at least one candidate peak has not yet
// had its final prominence settled.
func (s *sweep) joinsOpenPeak(cands []int) bool {
	for _, p := range cands {
		if !s.closed[p] {
			return true
		}
	}

	return false
}

// markPeak registers node as a newly discovered peak.
//
// Prominence starts at the node's own elevation rather than being left
// to the key-col branch: an island peak that never merges must keep its
// full height above the zero baseline.
func (s *sweep) markPeak(node int) {
	previous := s.peaks[len(s.peaks)-1]
	if previous != node { // the seeded global maximum is already listed
		s.peaks = append(s.peaks, node)
	}
	s.dom[node] = previous // precedence bookkeeping only
	s.pred[node] = node
	s.prom[node] = s.elev[node]
}

// markKeyCol records the merge of the candidate peaks at node and
// settles every still-open candidate: prominence so far holds the peak's
// own elevation, so subtracting the col's elevation leaves peak − col.
// The merge is generic over the tuple length; an n-way col closes all n
// open candidates in one step.
func (s *sweep) markKeyCol(node int, cands []int) {
	tuple := append([]int(nil), cands...)
	s.cols = append(s.cols, KeyCol{Peaks: tuple, Col: node})
	s.merged[tupleKey(cands)] = struct{}{}

	lowest := cands[len(cands)-1] // last-discovered = lowest merged peak
	s.dom[node] = lowest
	s.pred[node] = lowest
	s.prom[node] = 0 // a col itself has zero prominence

	for _, p := range cands {
		if s.closed[p] {
			continue
		}
		s.prom[p] -= s.elev[node]
		s.closed[p] = true
	}
}

// markSlope assigns node to an existing basin. With one candidate the
// choice is forced; among several (all merged earlier) the basin a
// plurality of the node's neighbors belong to wins, frequency ties going
// to the lowest peak index.
func (s *sweep) markSlope(node int, cands []int) {
	best := cands[0]
	if len(cands) > 1 {
		best = s.pluralityPeak(node, cands)
	}
	s.dom[node] = best
	s.pred[node] = best
}

// pluralityPeak counts, per candidate peak, how many of node's neighbors
// currently point at it, and returns the most frequent. Ties resolve to
// the lowest peak index, keeping the choice deterministic.
func (s *sweep) pluralityPeak(node int, cands []int) int {
	inTuple := make(map[int]struct{}, len(cands))
	for _, p := range cands {
		inTuple[p] = struct{}{}
	}

	counts := make(map[int]int, len(cands))
	nbs, _ := s.g.Neighbors(node)
	for _, nb := range nbs {
		if p := s.pred[nb]; p >= 0 {
			if _, ok := inTuple[p]; ok {
				counts[p]++
			}
		}
	}

	best, bestCount := cands[0], counts[cands[0]]
	for _, p := range cands[1:] {
		switch c := counts[p]; {
		case c > bestCount:
			best, bestCount = p, c
		case c == bestCount && p < best:
			best = p
		}
	}

	return best
}

// snapshot copies the observable state after one step. Observers receive
// their own slices, so nothing they do can bleed back into the sweep.
func (s *sweep) snapshot(rank, node int, class Class) Step {
	return Step{
		Rank:       rank,
		Node:       node,
		Elevation:  s.elev[node],
		Class:      class,
		Peaks:      append([]int(nil), s.peaks...),
		Prominence: append([]float64(nil), s.prom...),
		KeyCols:    append([]KeyCol(nil), s.cols...),
	}
}

// tupleKey renders an ordered peak tuple as a canonical map key.
func tupleKey(cands []int) string {
	var sb strings.Builder
	for i, p := range cands {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(p))
	}

	return sb.String()
}
