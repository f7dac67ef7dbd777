package kripke

// SatSet returns the set of state indices of k at which phi holds, using
// oracle to decide atomic propositions. It builds a fresh symbolic
// encoding of k, pre-seeds the memo at phi's leaves, recurses over phi,
// and decodes the resulting BDD back into an ordinary set of indices: a
// state i is included iff the result BDD, conjoined with the strict
// formula for state i, is not the false BDD.
//
// If stats is non-nil, the work this call performed is added to its
// counters; pass nil if you don't need them.
func SatSet[AP comparable, D any](k *Structure[D], oracle Oracle[AP, D], phi *Formula[AP], stats *FixedPointStats) map[int]struct{} {
	if stats == nil {
		stats = newFixedPointStats()
	}
	enc := newEncoding(k, stats)
	s := newSolver(enc, k, oracle, phi, stats)
	result := s.eval(phi)
	stats.finalize()

	out := make(map[int]struct{})
	for i := 0; i < k.Len(); i++ {
		if !enc.b.Equal(enc.b.And(result, enc.stateFormula(i)), enc.b.False()) {
			out[i] = struct{}{}
		}
	}
	return out
}

// IsSat reports whether every state in initial satisfies phi: it builds
// the BDD for the initial-states set and tests that it implies the
// satisfaction set, i.e. initial ⊆ SatSet(k, oracle, phi).
func IsSat[AP comparable, D any](k *Structure[D], oracle Oracle[AP, D], initial []int, phi *Formula[AP]) bool {
	stats := newFixedPointStats()
	enc := newEncoding(k, stats)
	s := newSolver(enc, k, oracle, phi, stats)
	result := s.eval(phi)

	initialBDD := enc.statesSetFormula(initial)
	implication := enc.b.Imp(initialBDD, result)
	return enc.b.Equal(implication, enc.b.True())
}
