package kripke

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateStateDiagramMarksInitialAndSatisfyingStates(t *testing.T) {
	k := threeStateExample()
	sat := SatSet(k, hasLabel, Atom[string]("P"), nil)

	out := GenerateStateDiagram(k, []int{0}, sat, nil)
	require.Contains(t, out, "stateDiagram-v2")
	require.Contains(t, out, "[*] --> s0")
	require.Contains(t, out, "s0 (sat)")
	require.Contains(t, out, "s2 (sat)")
	require.NotContains(t, out, "s1 (sat)")
}

func TestGenerateDOTRendersEdgesAndInitialMarker(t *testing.T) {
	k := threeStateExample()

	out := GenerateDOT(k, []int{0}, nil)
	require.Contains(t, out, "digraph KripkeStructure")
	require.Contains(t, out, `start -> "s0"`)
	require.Contains(t, out, `"s0" -> "s1"`)
	require.Contains(t, out, `"s2" -> "s0"`)
}

func TestGenerateStateDiagramWithCustomLabeler(t *testing.T) {
	k := threeStateExample()
	label := func(i int, value []string) string {
		if len(value) == 0 {
			return "empty"
		}
		return value[0]
	}

	out := GenerateStateDiagram(k, nil, nil, label)
	require.Contains(t, out, "P --> Q")
}
