package kripke

import (
	"fmt"

	"github.com/dalzilio/rudd"
)

// encoding is the symbolic representation of a Structure: the BDD variable
// manager, the precomputed transition relation and its negation, the
// rename relation used for the relational product, and the machinery to
// build and decode current-state-variable BDDs. It is built once per
// top-level evaluation and never mutated afterwards.
//
// Variable order is [v0 .. v(n-1), v0' .. v(n-1)'] — the first n variables
// are current-state, the last n are next-state, position-paired.
type encoding[D any] struct {
	n int
	b rudd.Set

	transitionRelation       rudd.Node
	negatedTransitionRelation rudd.Node
	renameRelation           rudd.Node

	currentVarSet rudd.Node
	nextVarSet    rudd.Node

	stats *FixedPointStats
}

// newEncoding builds the symbolic representation of k. Construction is
// total for any k with at least one state: the only failure mode is
// exhausting the BDD library's variable space for an extremely large
// state count, which is a resource condition rather than a modeled error
// and is therefore signalled with panic.
func newEncoding[D any](k *Structure[D], stats *FixedPointStats) *encoding[D] {
	n := k.Len()
	sys, err := rudd.New(2 * n)
	if err != nil {
		panic(fmt.Sprintf("kripke: cannot allocate a %d-variable BDD manager for %d states: %v", 2*n, n, err))
	}
	b := rudd.Set{BDD: sys}

	currentVars := make([]int, n)
	nextVars := make([]int, n)
	for i := 0; i < n; i++ {
		currentVars[i] = i
		nextVars[i] = n + i
	}

	e := &encoding[D]{
		n:             n,
		b:             b,
		currentVarSet: b.Makeset(currentVars),
		nextVarSet:    b.Makeset(nextVars),
		stats:         stats,
	}

	transition := b.False()
	for i := 0; i < n; i++ {
		fromFormula := e.strictStateFormula(i, false)
		for _, j := range k.Successors(i) {
			toFormula := e.strictStateFormula(j, true)
			transition = b.Or(transition, b.And(fromFormula, toFormula))
		}
	}
	e.transitionRelation = transition
	e.negatedTransitionRelation = b.Not(transition)

	rename := b.True()
	for i := 0; i < n; i++ {
		rename = b.And(rename, b.Equiv(b.Ithvar(i), b.Ithvar(n+i)))
	}
	e.renameRelation = rename

	return e
}

// strictStateFormula builds the one-hot conjunction that asserts exactly
// state i, over the current-state variables (next=false) or the
// next-state variables (next=true). It mentions every variable on its
// side, positively for i and negatively for every other state — the
// "strict" encoding spec section 3 requires for the transition relation.
func (e *encoding[D]) strictStateFormula(i int, next bool) rudd.Node {
	offset := 0
	if next {
		offset = e.n
	}
	formula := e.b.True()
	for k := 0; k < e.n; k++ {
		var lit rudd.Node
		if k == i {
			lit = e.b.Ithvar(offset + k)
		} else {
			lit = e.b.NIthvar(offset + k)
		}
		formula = e.b.And(formula, lit)
	}
	return formula
}

// stateFormula returns the strict one-hot BDD over current-state variables
// picking exactly state i. It is used both for decoding a satisfaction set
// and as a building block for statesSetFormula.
func (e *encoding[D]) stateFormula(i int) rudd.Node {
	return e.strictStateFormula(i, false)
}

// statesSetFormula returns the disjunction of strict state formulas for
// every index in indices. The result is a current-state-variable BDD
// suitable for use as the initial-states set in IsSat.
func (e *encoding[D]) statesSetFormula(indices []int) rudd.Node {
	formula := e.b.False()
	for _, i := range indices {
		formula = e.b.Or(formula, e.stateFormula(i))
	}
	return formula
}

// liftToNext renames a current-state-variable BDD x into the
// corresponding next-state-variable BDD, via the relational product: x is
// conjoined with the rename relation v <=> v', then the current-state
// variables are quantified away, leaving only the primed form.
func (e *encoding[D]) liftToNext(x rudd.Node) rudd.Node {
	e.stats.bddOps++
	return e.b.Exist(e.b.And(x, e.renameRelation), e.currentVarSet)
}

// forAllNext is the universal counterpart of Exist over the next-state
// variables, obtained by De Morgan's law: rudd exposes only existential
// quantification (Exist), so ∀v'. f is ¬∃v'. ¬f.
func (e *encoding[D]) forAllNext(f rudd.Node) rudd.Node {
	return e.b.Not(e.b.Exist(e.b.Not(f), e.nextVarSet))
}

// weakPreImage computes { s | exists s', s -> s' and s' in x }: lift x to
// the next-state variables, conjoin with the transition relation, then
// existentially quantify the next-state variables away.
func (e *encoding[D]) weakPreImage(x rudd.Node) rudd.Node {
	e.stats.preImages++
	xNext := e.liftToNext(x)
	return e.b.Exist(e.b.And(xNext, e.transitionRelation), e.nextVarSet)
}

// strongPreImage computes { s | for all s', s -> s' implies s' in x }:
// lift x to the next-state variables, form the implication T => x' as
// (not T) or x', then universally quantify the next-state variables away.
func (e *encoding[D]) strongPreImage(x rudd.Node) rudd.Node {
	e.stats.preImages++
	xNext := e.liftToNext(x)
	implication := e.b.Or(e.negatedTransitionRelation, xNext)
	return e.forAllNext(implication)
}
