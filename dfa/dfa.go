// Package dfa provides a deterministic walker for compiled automata whose
// transition relation contains no epsilon edges.
//
// Without epsilon edges every state resolves an input rune to at most one
// successor (its literal edge for that rune, else its wildcard edge), so
// the active-state set of the full simulation never holds more than one
// state. The walker exploits that: it tracks a single current state and
// skips all set bookkeeping, producing exactly the same accept/reject
// decisions for the automata it admits.
package dfa

import (
	"errors"

	"github.com/coregx/rematch/nfa"
)

// ErrEpsilon is returned by New when the automaton has epsilon edges and
// therefore needs the full set simulation.
var ErrEpsilon = errors.New("dfa: relation has epsilon transitions")

// Walker executes an epsilon-free automaton one state at a time.
// It borrows the automaton read-only and carries no mutable state of its
// own, so a single Walker may run many inputs concurrently.
type Walker struct {
	nfa *nfa.NFA
}

// New creates a walker for the given automaton.
// Automata with epsilon edges are rejected with ErrEpsilon.
func New(n *nfa.NFA) (*Walker, error) {
	if n.HasEpsilon() {
		return nil, ErrEpsilon
	}
	return &Walker{nfa: n}, nil
}

// Run reports whether the automaton accepts the input.
// The literal edge for the current rune is tried before the wildcard edge;
// a state with neither is a dead end and rejects immediately.
func (w *Walker) Run(input string) bool {
	state := nfa.StateID(0)

	for _, r := range input {
		if to, ok := w.nfa.Literal(state, r); ok {
			state = to
		} else if to, ok := w.nfa.Wildcard(state); ok {
			state = to
		} else {
			return false
		}
	}

	return w.nfa.IsAccepting(state)
}
