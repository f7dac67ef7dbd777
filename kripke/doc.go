// Package kripke implements a symbolic CTL model checker over finite
// Kripke structures. States and the transition relation are encoded as
// Binary Decision Diagrams (via github.com/dalzilio/rudd), and the six
// CTL temporal operators are evaluated through Boolean combination,
// quantification (the weak/strong pre-image), and least/greatest
// fixed-point iteration.
//
// Build a Structure with Builder, describe atomic propositions with an
// Oracle function, build a Formula with the constructors in formula.go,
// and call SatSet or IsSat. Everything else in this package — the
// symbolic encoding, the pre-image engine, and the recursive solver — is
// an implementation detail exercised only through those two entry points.
package kripke
