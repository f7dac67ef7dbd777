package kripke

import (
	"fmt"
	"sort"
	"strings"
)

// StateLabeler renders a human-readable label for a state, for use in
// diagram output. If nil, diagram functions fall back to "s<index>".
type StateLabeler[D any] func(i int, value D) string

func defaultLabel(i int) string {
	return fmt.Sprintf("s%d", i)
}

// GenerateStateDiagram renders k as a Mermaid stateDiagram-v2 string, with
// the given initial states marked. highlight, if non-nil, is typically a
// computed satisfaction set: matching states are annotated "(sat)".
func GenerateStateDiagram[D any](k *Structure[D], initial []int, highlight map[int]struct{}, label StateLabeler[D]) string {
	if label == nil {
		label = func(i int, _ D) string { return defaultLabel(i) }
	}

	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")

	sorted := append([]int(nil), initial...)
	sort.Ints(sorted)
	for _, i := range sorted {
		sb.WriteString(fmt.Sprintf("    [*] --> %s\n", label(i, k.Value(i))))
	}
	sb.WriteString("\n")

	for i := 0; i < k.Len(); i++ {
		from := label(i, k.Value(i))
		if _, ok := highlight[i]; ok {
			from += " (sat)"
		}
		for _, j := range k.Successors(i) {
			to := label(j, k.Value(j))
			if _, ok := highlight[j]; ok {
				to += " (sat)"
			}
			sb.WriteString(fmt.Sprintf("    %s --> %s\n", from, to))
		}
	}
	return sb.String()
}

// GenerateDOT renders k as a Graphviz DOT digraph, the counterpart of the
// teacher's root-level GenerateGraphviz for the old explicit-state
// KripkeStructure type.
func GenerateDOT[D any](k *Structure[D], initial []int, label StateLabeler[D]) string {
	if label == nil {
		label = func(i int, _ D) string { return defaultLabel(i) }
	}

	var sb strings.Builder
	sb.WriteString("digraph KripkeStructure {\n")
	sb.WriteString("  rankdir=LR;\n")
	sb.WriteString("  node [shape=circle];\n\n")

	sorted := append([]int(nil), initial...)
	sort.Ints(sorted)
	if len(sorted) > 0 {
		sb.WriteString("  start [shape=point];\n")
		for _, i := range sorted {
			sb.WriteString(fmt.Sprintf("  start -> %q;\n", label(i, k.Value(i))))
		}
		sb.WriteString("\n")
	}

	for i := 0; i < k.Len(); i++ {
		from := label(i, k.Value(i))
		for _, j := range k.Successors(i) {
			to := label(j, k.Value(j))
			sb.WriteString(fmt.Sprintf("  %q -> %q;\n", from, to))
		}
	}
	sb.WriteString("}\n")
	return sb.String()
}
