// Command demo builds the three-state Kripke structure used throughout
// the kripke package's tests, checks a handful of CTL formulas against
// it, and prints the satisfaction sets and a Mermaid diagram of the
// result — the library-API counterpart of the teacher's own cmd/demo,
// which exercised its actor engine the same way.
package main

import (
	"fmt"
	"sort"

	"github.com/erwanM974/citreelo/kripke"
)

func hasLabel(ap string, labels []string) bool {
	for _, l := range labels {
		if l == ap {
			return true
		}
	}
	return false
}

func sortedStates(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

func main() {
	b := kripke.NewBuilder[[]string]()
	s0 := b.AddState([]string{"P"})
	s1 := b.AddState([]string{"Q"})
	s2 := b.AddState([]string{"P", "Q"})
	b.AddEdge(s0, s1)
	b.AddEdge(s0, s2)
	b.AddEdge(s1, s1)
	b.AddEdge(s2, s0)
	structure := b.Build()

	formulas := map[string]*kripke.Formula[string]{
		"p":          kripke.Atom[string]("P"),
		"q":          kripke.Atom[string]("Q"),
		"EX p":       kripke.EX(kripke.Atom[string]("P")),
		"AX q":       kripke.AX(kripke.Atom[string]("Q")),
		"E[p U q]":   kripke.EU(kripke.Atom[string]("P"), kripke.Atom[string]("Q")),
		"A[p U q]":   kripke.AU(kripke.Atom[string]("P"), kripke.Atom[string]("Q")),
		"AG (p | q)": kripke.AG(kripke.Or(kripke.Atom[string]("P"), kripke.Atom[string]("Q"))),
	}

	names := make([]string, 0, len(formulas))
	for name := range formulas {
		names = append(names, name)
	}
	sort.Strings(names)

	var lastSat map[int]struct{}
	stats := &kripke.FixedPointStats{}
	for _, name := range names {
		sat := kripke.SatSet(structure, hasLabel, formulas[name], stats)
		lastSat = sat
		fmt.Printf("%-12s sat = %v\n", name, sortedStates(sat))
	}
	fmt.Println("stats:", stats)

	initial := []int{s0}
	fmt.Println()
	fmt.Printf("is_sat(initial={0}, AF q) = %v\n", kripke.IsSat(structure, hasLabel, initial, kripke.AF(kripke.Atom[string]("Q"))))

	fmt.Println()
	fmt.Println(kripke.GenerateStateDiagram(structure, initial, lastSat, nil))
}
