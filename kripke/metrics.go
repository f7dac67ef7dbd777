package kripke

import "fmt"

// FixedPointStats collects counters describing the work SatSet performed.
// Each SatSet call given a FixedPointStats adds its work to the counters,
// so a value reused across calls holds their totals; IsSat keeps its own
// counters internally and does not expose them. It is the symbolic-engine
// counterpart of the teacher's MetricsCollector: a plain in-process struct
// filled in for the caller rather than wired to any external metrics backend, since a
// synchronous, no-I/O library call (spec section 5) has nothing for a
// scrape endpoint to attach to.
type FixedPointStats struct {
	// Evaluations counts distinct subformulas evaluated (memo misses).
	Evaluations int
	// MemoHits counts subformula lookups served from the memo table.
	MemoHits int
	// FixedPointIterations counts total loop iterations across every
	// until/global fixed point computed during the call.
	FixedPointIterations int
	// PreImages counts weak and strong pre-image computations.
	PreImages int
	// BDDOps counts relational-product (liftToNext) operations, a proxy
	// for how much quantification work the call performed.
	BDDOps int

	bddOps    int
	preImages int
}

func newFixedPointStats() *FixedPointStats {
	return &FixedPointStats{}
}

// finalize folds the internal counters kept alongside the encoding back
// into the exported fields, once an evaluation completes.
func (s *FixedPointStats) finalize() *FixedPointStats {
	s.BDDOps = s.bddOps
	s.PreImages = s.preImages
	return s
}

// String renders the counters as a one-line summary.
func (s *FixedPointStats) String() string {
	return fmt.Sprintf(
		"evaluations=%d memo_hits=%d fixed_point_iterations=%d pre_images=%d bdd_ops=%d",
		s.Evaluations, s.MemoHits, s.FixedPointIterations, s.PreImages, s.BDDOps,
	)
}
