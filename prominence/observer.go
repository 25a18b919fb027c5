package prominence

import (
	charmlog "github.com/charmbracelet/log"
)

// Step is the read-only snapshot handed to an observer after each node's
// classification: the node just visited, its class, and copies of the
// running peak set, prominence accumulator, and key-col table.
type Step struct {
	Rank       int     // position in the descending sweep (0 = highest)
	Node       int     // node index just classified
	Elevation  float64 // node's elevation
	Class      Class   // classification assigned this step
	Peaks      []int
	Prominence []float64
	KeyCols    []KeyCol
}

// StepFunc observes one sweep step. Observers run synchronously between
// steps; they may inspect the snapshot but cannot affect the sweep.
type StepFunc func(Step)

// StepLogger returns an observer that writes every step to l at debug
// level — a headless stand-in for watching the sweep unfold, useful when
// a classification needs to be traced back to the state that caused it.
func StepLogger(l *charmlog.Logger) StepFunc {
	return func(s Step) {
		l.Debug("sweep step",
			"rank", s.Rank,
			"node", s.Node,
			"elevation", s.Elevation,
			"class", s.Class.String(),
			"peaks", s.Peaks,
			"keycols", len(s.KeyCols),
		)
	}
}
