package kripke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormulaKeyStructuralEquality(t *testing.T) {
	// Two independently-built formulas with the same shape must produce
	// the same memo key, even though they are distinct allocations.
	f1 := And(Atom[string]("p"), Not(Atom[string]("q")))
	f2 := And(Atom[string]("p"), Not(Atom[string]("q")))
	require.Equal(t, f1.key(), f2.key())

	g := And(Atom[string]("q"), Not(Atom[string]("q")))
	require.NotEqual(t, f1.key(), g.key())
}

func TestFormulaKeyDistinguishesOperators(t *testing.T) {
	p := Atom[string]("p")
	require.NotEqual(t, EX(p).key(), AX(p).key())
	require.NotEqual(t, EF(p).key(), EG(p).key())
	require.NotEqual(t, And(p, p).key(), Or(p, p).key())
}

func TestWalkLeavesCollectsDistinctAtomsAndConstants(t *testing.T) {
	phi := And(
		Or(Atom[string]("p"), Atom[string]("q")),
		Implies(Atom[string]("p"), True[string]()),
	)

	atoms := make(map[string]struct{})
	var hasTrue, hasFalse bool
	phi.walkLeaves(atoms, &hasTrue, &hasFalse)

	require.Equal(t, map[string]struct{}{"p": {}, "q": {}}, atoms)
	require.True(t, hasTrue)
	require.False(t, hasFalse)
}
