package kripke

// Oracle decides whether an atomic proposition ap holds on a state's
// domain value. It must be a pure, deterministic function: the solver may
// call it at most once per (state, atom) pair.
type Oracle[AP comparable, D any] func(ap AP, domain D) bool

// state is one vertex of a Structure: an opaque domain value plus the
// indices of its outgoing-transition targets.
type state[D any] struct {
	value D
	succ  []int
}

// Structure is a finite Kripke structure: an indexed sequence of states,
// each carrying a domain value and an unordered list of successor
// indices. It is immutable once built and its indices are stable.
type Structure[D any] struct {
	states []state[D]
}

// Len returns the number of states n. Every transition target and every
// state index accepted elsewhere in this package lies in [0, Len()).
func (k *Structure[D]) Len() int {
	return len(k.states)
}

// Value returns the domain value labelling state i.
func (k *Structure[D]) Value(i int) D {
	return k.states[i].value
}

// Successors returns the outgoing-transition targets of state i. The
// returned slice must not be mutated by the caller.
func (k *Structure[D]) Successors(i int) []int {
	return k.states[i].succ
}

// Builder accumulates states and edges incrementally, one AddState/AddEdge
// call at a time, and then freezes them into an immutable Structure.
// States are addressed by index rather than by name, matching the
// adjacency-list contract of spec section 6.
type Builder[D any] struct {
	states []state[D]
}

// NewBuilder returns an empty Builder.
func NewBuilder[D any]() *Builder[D] {
	return &Builder[D]{}
}

// AddState appends a new state labelled with value and returns its index.
func (b *Builder[D]) AddState(value D) int {
	id := len(b.states)
	b.states = append(b.states, state[D]{value: value})
	return id
}

// AddEdge records a transition from -> to. Both indices must already have
// been returned by AddState on this builder; self-loops and duplicate
// transitions are permitted and semantically idempotent. AddEdge panics if
// either index is out of range, since that can only be a programmer error
// in the caller building the structure (spec section 7 leaves input
// validation to the structure's builder, not the symbolic core).
func (b *Builder[D]) AddEdge(from, to int) {
	if from < 0 || from >= len(b.states) || to < 0 || to >= len(b.states) {
		panic("kripke: AddEdge index out of range")
	}
	b.states[from].succ = append(b.states[from].succ, to)
}

// Build freezes the accumulated states and edges into an immutable
// Structure. Build panics if no states were added: spec section 3 requires
// n >= 1.
func (b *Builder[D]) Build() *Structure[D] {
	if len(b.states) == 0 {
		panic("kripke: a Structure must have at least one state")
	}
	states := make([]state[D], len(b.states))
	for i, s := range b.states {
		succ := make([]int, len(s.succ))
		copy(succ, s.succ)
		states[i] = state[D]{value: s.value, succ: succ}
	}
	return &Structure[D]{states: states}
}
