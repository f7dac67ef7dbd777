package kripke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFixedPointStatsString(t *testing.T) {
	s := newFixedPointStats()
	s.Evaluations = 3
	s.MemoHits = 2
	s.FixedPointIterations = 5
	s.bddOps = 4
	s.preImages = 1
	s.finalize()

	out := s.String()
	require.Contains(t, out, "evaluations=3")
	require.Contains(t, out, "memo_hits=2")
	require.Contains(t, out, "fixed_point_iterations=5")
	require.Contains(t, out, "bdd_ops=4")
	require.Contains(t, out, "pre_images=1")
}
