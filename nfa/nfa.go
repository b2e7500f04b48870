// Package nfa implements the restricted-pattern compiler and the
// epsilon-closure set simulation that executes compiled automata.
//
// A pattern is compiled in a single left-to-right scan into a transition
// relation plus an accepting-state set. Anchors and quantifiers are encoded
// directly as edits to the relation (epsilon bypasses, self-loops, edge
// removal) rather than through an intermediate parse tree, so the automaton
// representation stays uniform: a mapping from (state, symbol) to one
// destination state. Nondeterminism arises only because several states can
// be active at once during a run, never from a key mapping to more than one
// destination.
package nfa

import "fmt"

// StateID uniquely identifies an automaton state.
// State 0 is always the start state.
type StateID uint32

// SymbolKind identifies the variant of a transition symbol.
type SymbolKind uint8

const (
	// KindEpsilon labels a transition taken without consuming input.
	KindEpsilon SymbolKind = iota

	// KindLiteral labels a transition taken only when the current input
	// rune equals the symbol's rune.
	KindLiteral

	// KindWildcard labels a catch-all transition, tried only when no
	// literal transition matches from the current state.
	KindWildcard
)

// String returns a human-readable representation of the SymbolKind.
func (k SymbolKind) String() string {
	switch k {
	case KindEpsilon:
		return "Epsilon"
	case KindLiteral:
		return "Literal"
	case KindWildcard:
		return "Wildcard"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// Symbol is the tagged union labeling a transition edge.
// Rune is meaningful only for KindLiteral; it is zero otherwise so that
// symbols are directly comparable as map keys.
type Symbol struct {
	Kind SymbolKind
	Rune rune
}

// EpsilonSym returns the symbol for a transition that consumes no input.
func EpsilonSym() Symbol {
	return Symbol{Kind: KindEpsilon}
}

// LiteralSym returns the symbol for a transition on the rune r.
func LiteralSym(r rune) Symbol {
	return Symbol{Kind: KindLiteral, Rune: r}
}

// WildcardSym returns the lowest-priority catch-all symbol.
func WildcardSym() Symbol {
	return Symbol{Kind: KindWildcard}
}

// String returns a human-readable representation of the Symbol.
func (s Symbol) String() string {
	if s.Kind == KindLiteral {
		return fmt.Sprintf("Literal(%q)", s.Rune)
	}
	return s.Kind.String()
}

// Key addresses a single edge in the transition relation.
type Key struct {
	State StateID
	Sym   Symbol
}

// Transitions is the transition relation: a mapping from (state, symbol)
// to the single destination state for that edge.
type Transitions map[Key]StateID

// NFA is a compiled pattern: an immutable transition relation together with
// the set of accepting states. A run accepts iff, after consuming all input,
// the active-state set intersects the accepting set.
//
// The relation is built once by the compiler and never mutated afterward,
// so a single NFA may execute many inputs concurrently; each run owns only
// its transient active-state sets.
type NFA struct {
	transitions Transitions
	accepting   map[StateID]struct{}

	maxState   StateID
	hasEpsilon bool
	anchored   bool
}

// States returns the number of states reachable through the relation,
// counting the start state. States are implicit: they exist as the set of
// integers appearing in the relation and the accepting set.
func (n *NFA) States() int {
	return int(n.maxState) + 1
}

// MaxState returns the highest state identifier in the automaton.
func (n *NFA) MaxState() StateID {
	return n.maxState
}

// HasEpsilon reports whether the relation contains any epsilon edge.
// Epsilon-free automata keep a singleton active set during simulation and
// can be executed by the deterministic walker instead.
func (n *NFA) HasEpsilon() bool {
	return n.hasEpsilon
}

// IsStartAnchored reports whether the pattern began with '^', suppressing
// the permissive wildcard loop at the start state.
func (n *NFA) IsStartAnchored() bool {
	return n.anchored
}

// IsAccepting reports whether id is an accepting state.
func (n *NFA) IsAccepting(id StateID) bool {
	_, ok := n.accepting[id]
	return ok
}

// Literal returns the destination of the literal edge on r from state s.
func (n *NFA) Literal(s StateID, r rune) (StateID, bool) {
	to, ok := n.transitions[Key{State: s, Sym: LiteralSym(r)}]
	return to, ok
}

// Wildcard returns the destination of the catch-all edge from state s.
func (n *NFA) Wildcard(s StateID) (StateID, bool) {
	to, ok := n.transitions[Key{State: s, Sym: WildcardSym()}]
	return to, ok
}

// Epsilon returns the destination of the epsilon edge from state s.
func (n *NFA) Epsilon(s StateID) (StateID, bool) {
	to, ok := n.transitions[Key{State: s, Sym: EpsilonSym()}]
	return to, ok
}

// Edges returns the number of edges in the relation.
func (n *NFA) Edges() int {
	return len(n.transitions)
}

// String returns a human-readable summary of the NFA.
func (n *NFA) String() string {
	return fmt.Sprintf("NFA{states: %d, edges: %d, anchored: %v, epsilon: %v}",
		n.States(), len(n.transitions), n.anchored, n.hasEpsilon)
}
