package kripke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuilderBuildsStableIndices(t *testing.T) {
	b := NewBuilder[string]()
	a := b.AddState("a")
	c := b.AddState("c")
	b.AddEdge(a, c)
	b.AddEdge(c, c)

	k := b.Build()
	require.Equal(t, 2, k.Len())
	require.Equal(t, "a", k.Value(a))
	require.Equal(t, []int{c}, k.Successors(a))
	require.Equal(t, []int{c}, k.Successors(c))
}

func TestBuilderAllowsDuplicateAndSelfLoopEdges(t *testing.T) {
	b := NewBuilder[int]()
	s := b.AddState(0)
	b.AddEdge(s, s)
	b.AddEdge(s, s)

	k := b.Build()
	require.Equal(t, []int{s, s}, k.Successors(s))
}

func TestAddEdgeOutOfRangePanics(t *testing.T) {
	b := NewBuilder[int]()
	b.AddState(0)
	require.Panics(t, func() { b.AddEdge(0, 5) })
	require.Panics(t, func() { b.AddEdge(-1, 0) })
}

func TestBuildWithNoStatesPanics(t *testing.T) {
	require.Panics(t, func() { NewBuilder[int]().Build() })
}
