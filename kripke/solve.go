package kripke

import "github.com/dalzilio/rudd"

// solver recursively evaluates a Formula against an encoding, memoizing
// each subformula's BDD by structural identity. It is constructed fresh
// for every SatSet/IsSat call (spec section 5: no cross-call caching).
type solver[AP comparable, D any] struct {
	enc   *encoding[D]
	memo  map[string]rudd.Node
	top   rudd.Node
	stats *FixedPointStats
}

// newSolver pre-seeds the memo table with a BDD for every distinct atomic
// proposition in phi, and for the True/False constants if they occur,
// following the original's collect_leaves-then-seed two-phase approach.
func newSolver[AP comparable, D any](enc *encoding[D], k *Structure[D], oracle Oracle[AP, D], phi *Formula[AP], stats *FixedPointStats) *solver[AP, D] {
	atoms := make(map[AP]struct{})
	var hasTrue, hasFalse bool
	phi.walkLeaves(atoms, &hasTrue, &hasFalse)

	s := &solver[AP, D]{
		enc:   enc,
		memo:  make(map[string]rudd.Node),
		top:   enc.b.True(),
		stats: stats,
	}

	for ap := range atoms {
		bdd := enc.b.False()
		for i := 0; i < k.Len(); i++ {
			if oracle(ap, k.Value(i)) {
				bdd = enc.b.Or(bdd, enc.b.Ithvar(i))
			}
		}
		s.memo[Atom(ap).key()] = bdd
	}
	if hasTrue {
		s.memo[True[AP]().key()] = s.top
	}
	if hasFalse {
		s.memo[False[AP]().key()] = enc.b.False()
	}
	return s
}

// eval returns the BDD, over current-state variables, of the states where
// phi holds. Pre-seeded leaves are always memo hits; a leaf reaching this
// function unmemoized means pre-seeding missed it, which can only be a
// programmer error (spec section 7), and is fatal.
func (s *solver[AP, D]) eval(phi *Formula[AP]) rudd.Node {
	key := phi.key()
	if bdd, ok := s.memo[key]; ok {
		s.stats.MemoHits++
		return bdd
	}

	var result rudd.Node
	switch phi.kind {
	case kindLeafTrue, kindLeafFalse, kindLeafAtom:
		panic("kripke: leaf formula reached the solver without having been pre-seeded")
	case kindUnary:
		result = s.evalUnary(phi)
	case kindBinary:
		result = s.evalBinary(phi)
	default:
		panic("kripke: unknown formula kind")
	}

	s.stats.Evaluations++
	s.memo[key] = result
	return result
}

func (s *solver[AP, D]) evalUnary(phi *Formula[AP]) rudd.Node {
	b := s.enc.b
	switch phi.uop {
	case opNot:
		return b.Not(s.eval(phi.a))
	case opEX:
		return s.enc.weakPreImage(s.eval(phi.a))
	case opAX:
		return s.enc.strongPreImage(s.eval(phi.a))
	case opEF:
		return s.untilFixpoint(s.top, s.eval(phi.a), s.enc.weakPreImage)
	case opAF:
		return s.untilFixpoint(s.top, s.eval(phi.a), s.enc.strongPreImage)
	case opEG:
		return s.globalFixpoint(s.eval(phi.a), s.enc.weakPreImage)
	case opAG:
		return s.globalFixpoint(s.eval(phi.a), s.enc.strongPreImage)
	default:
		panic("kripke: unknown unary operator")
	}
}

func (s *solver[AP, D]) evalBinary(phi *Formula[AP]) rudd.Node {
	b := s.enc.b
	switch phi.bop {
	case opAnd:
		return b.And(s.eval(phi.a), s.eval(phi.b))
	case opOr:
		return b.Or(s.eval(phi.a), s.eval(phi.b))
	case opImplies:
		return b.Imp(s.eval(phi.a), s.eval(phi.b))
	case opIff:
		return b.Equiv(s.eval(phi.a), s.eval(phi.b))
	case opEU:
		return s.untilFixpoint(s.eval(phi.a), s.eval(phi.b), s.enc.weakPreImage)
	case opAU:
		return s.untilFixpoint(s.eval(phi.a), s.eval(phi.b), s.enc.strongPreImage)
	default:
		panic("kripke: unknown binary operator")
	}
}

// untilFixpoint computes the least fixed point Z = after v (before ^
// preImage(Z)), seeded at Z0 = after. EF/AF pass the shared top (true)
// BDD as before, matching E[True U psi] / A[True U psi].
func (s *solver[AP, D]) untilFixpoint(before, after rudd.Node, preImage func(rudd.Node) rudd.Node) rudd.Node {
	b := s.enc.b
	current := after
	for {
		next := b.Or(current, b.And(before, preImage(current)))
		s.stats.FixedPointIterations++
		if b.Equal(next, current) {
			return next
		}
		current = next
	}
}

// globalFixpoint computes the greatest fixed point Z = seed ^ preImage(Z),
// seeded at Z0 = seed.
func (s *solver[AP, D]) globalFixpoint(seed rudd.Node, preImage func(rudd.Node) rudd.Node) rudd.Node {
	b := s.enc.b
	current := seed
	for {
		next := b.And(current, preImage(current))
		s.stats.FixedPointIterations++
		if b.Equal(next, current) {
			return next
		}
		current = next
	}
}
