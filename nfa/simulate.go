package nfa

import "github.com/coregx/rematch/internal/sparse"

// Simulator executes an automaton by tracking the set of simultaneously
// active states, one input rune at a time. The two state sets are reused
// across runs, so a Simulator amortizes its allocations but is not safe for
// concurrent use; run concurrent searches through separate Simulators (the
// meta engine pools them) or NFA.Run.
type Simulator struct {
	nfa  *NFA
	curr *sparse.Set
	next *sparse.Set
}

// NewSimulator creates a simulator for the given automaton.
func NewSimulator(n *NFA) *Simulator {
	capacity := uint32(n.MaxState()) + 1
	return &Simulator{
		nfa:  n,
		curr: sparse.New(capacity),
		next: sparse.New(capacity),
	}
}

// Run reports whether the automaton accepts the input.
//
// The active set starts as the epsilon closure of the start state. For each
// input rune, every active state contributes at most one successor: its
// literal edge for that rune if one exists, else its wildcard edge. An empty
// successor set rejects immediately; remaining input cannot revive a dead
// run. After the input is exhausted, the run accepts iff some active state
// is accepting.
func (s *Simulator) Run(input string) bool {
	s.curr.Clear()
	s.addClosure(s.curr, 0)

	for _, r := range input {
		s.next.Clear()
		for _, active := range s.curr.Values() {
			state := StateID(active)
			if to, ok := s.nfa.Literal(state, r); ok {
				s.addClosure(s.next, to)
			} else if to, ok := s.nfa.Wildcard(state); ok {
				s.addClosure(s.next, to)
			}
		}
		if s.next.IsEmpty() {
			return false
		}
		s.curr, s.next = s.next, s.curr
	}

	for _, active := range s.curr.Values() {
		if s.nfa.IsAccepting(StateID(active)) {
			return true
		}
	}
	return false
}

// addClosure inserts id and every state reachable from it through epsilon
// edges. Insert doubles as the visited guard, so the walk terminates even
// on an epsilon cycle; the compiler never builds one, but the engine does
// not rely on that.
func (s *Simulator) addClosure(set *sparse.Set, id StateID) {
	if !set.Insert(uint32(id)) {
		return
	}
	cur := id
	for {
		to, ok := s.nfa.Epsilon(cur)
		if !ok || !set.Insert(uint32(to)) {
			return
		}
		cur = to
	}
}

// Run reports whether the automaton accepts the input, using a throwaway
// Simulator. Safe to call concurrently on one NFA.
func (n *NFA) Run(input string) bool {
	return NewSimulator(n).Run(input)
}
