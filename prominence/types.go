// Package prominence defines the classification enum, result types,
// options, and sentinel errors for the peak-hierarchy engine of
// github.com/katalvlaran/relief.
package prominence

import (
	"errors"

	"github.com/katalvlaran/relief/elevation"
)

// Sentinel errors for prominence execution.
var (
	// ErrNilGraph indicates a nil *mesh.Graph was passed.
	ErrNilGraph = errors.New("prominence: connectivity graph is nil")

	// ErrEmptyField indicates a field with no observations.
	ErrEmptyField = errors.New("prominence: field must have at least one observation")

	// ErrShapeMismatch indicates field length ≠ graph order.
	ErrShapeMismatch = errors.New("prominence: field and connectivity graph must align by index")
)

// Class is the closed set of per-node classifications produced by the
// sweep. The branch order of the classification rule encodes priority;
// a Class is assigned to every node exactly once.
type Class int

const (
	// ClassPeak marks a node with no already-discovered peak among its
	// neighbors: a new local maximum or a previously unseen island.
	ClassPeak Class = iota

	// ClassSlope marks a node continuing exactly one basin, or standing
	// between basins that were already merged earlier.
	ClassSlope

	// ClassKeyCol marks the saddle where two or more open basins meet.
	ClassKeyCol
)

// String renders the class with the traditional topographic tags.
func (c Class) String() string {
	switch c {
	case ClassPeak:
		return "peak"
	case ClassSlope:
		return "slope"
	case ClassKeyCol:
		return "keycol"
	default:
		return "unknown"
	}
}

// KeyCol records one merge: the ordered tuple of peaks whose basins met
// (in peak discovery order — the canonical key of the merge) and the
// node where they met. A given set of peaks merges at most once.
type KeyCol struct {
	Peaks []int // merged peaks, in discovery order
	Col   int   // node index of the saddle
}

// Result is the full output of one prominence sweep.
//
// Prominence[i] is the accumulated prominence of node i: a settled peak
// holds peak-elevation − col-elevation, an unmerged peak its full
// elevation, a key col 0, and a plain slope node NaN (prominence is a
// property of peaks and cols, not of slopes).
//
// Peaks lists peak nodes in discovery order; the first entry is always
// the global maximum. KeyCols lists merges in the order they resolved.
// DominatingPeak[i] is the peak whose basin node i belongs to.
type Result struct {
	Prominence     []float64
	Peaks          []int
	KeyCols        []KeyCol
	DominatingPeak []int
}

// KeyColFor looks up the col node recorded for an ordered peak tuple.
// The tuple must be given in peak discovery order, exactly as merged.
func (r *Result) KeyColFor(peaks []int) (int, bool) {
	for _, kc := range r.KeyCols {
		if equalInts(kc.Peaks, peaks) {
			return kc.Col, true
		}
	}

	return 0, false
}

// equalInts reports element-wise equality of two int slices.
func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// Options configures the prominence engine.
//
// Observer   – optional per-step hook; must not affect results.
// CenterName – center statistic for FromPoints ("mean" or "median").
// Center     – explicit center callable; takes precedence over CenterName.
type Options struct {
	Observer   StepFunc
	CenterName string
	Center     elevation.Center
}

// Option is a functional option for configuring the engine.
type Option func(*Options)

// DefaultOptions returns the engine defaults: no observer, mean center
// statistic.
func DefaultOptions() Options {
	return Options{
		CenterName: "mean",
	}
}

// WithObserver attaches a per-step observer. The observer receives a
// snapshot after each node's classification; it may inspect but must not
// try to steer the sweep.
func WithObserver(fn StepFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Observer = fn
		}
	}
}

// WithCenterStat selects the named center statistic used by FromPoints.
func WithCenterStat(name string) Option {
	return func(o *Options) {
		o.CenterName = name
	}
}

// WithCenterFunc supplies an explicit center callable for FromPoints.
func WithCenterFunc(c elevation.Center) Option {
	return func(o *Options) {
		if c != nil {
			o.Center = c
		}
	}
}
