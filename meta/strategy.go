package meta

import "github.com/coregx/rematch/nfa"

// Strategy represents the execution strategy selected for a pattern.
type Strategy int

const (
	// UseNFA runs the epsilon-closure set simulation.
	// Selected whenever the relation has epsilon edges ('?' or '*'
	// quantifiers introduce them) or when EnableDFA is false.
	UseNFA Strategy = iota

	// UseDFA runs the deterministic single-state walker.
	// Selected for epsilon-free relations, where the active set of the
	// simulation is provably always a singleton and the walk is exactly
	// equivalent.
	UseDFA
)

// String returns a human-readable representation of the Strategy.
func (s Strategy) String() string {
	switch s {
	case UseNFA:
		return "UseNFA"
	case UseDFA:
		return "UseDFA"
	default:
		return "Unknown"
	}
}

// SelectStrategy chooses the execution strategy for a compiled automaton.
//
// The rule is structural: epsilon edges force the set simulation, because
// they are what lets several states be active at once. Without them, each
// state resolves an input rune to at most one successor (literal edge
// first, wildcard edge as fallback), so single-state walking loses nothing.
func SelectStrategy(n *nfa.NFA, config Config) Strategy {
	if !config.EnableDFA || n.HasEpsilon() {
		return UseNFA
	}
	return UseDFA
}
