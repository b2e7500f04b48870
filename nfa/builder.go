package nfa

// Builder constructs a transition relation incrementally. It exclusively
// owns the relation during compilation; the compiler edits edges in place,
// including removing a literal edge when rewriting it for '*'. Build hands
// back an immutable NFA, after which the builder must not be reused.
type Builder struct {
	transitions Transitions
	accepting   map[StateID]struct{}
	anchored    bool
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		transitions: make(Transitions),
		accepting:   make(map[StateID]struct{}),
	}
}

// AddLiteral adds an edge from 'from' to 'to' on the rune r.
// Adding an edge for an existing (state, symbol) key overwrites it.
func (b *Builder) AddLiteral(from StateID, r rune, to StateID) {
	b.transitions[Key{State: from, Sym: LiteralSym(r)}] = to
}

// AddWildcard adds a catch-all edge from 'from' to 'to'.
func (b *Builder) AddWildcard(from, to StateID) {
	b.transitions[Key{State: from, Sym: WildcardSym()}] = to
}

// AddEpsilon adds an edge from 'from' to 'to' that consumes no input.
func (b *Builder) AddEpsilon(from, to StateID) {
	b.transitions[Key{State: from, Sym: EpsilonSym()}] = to
}

// RemoveLiteral deletes the literal edge on r leaving 'from'.
// Removing an absent edge is a no-op.
func (b *Builder) RemoveLiteral(from StateID, r rune) {
	delete(b.transitions, Key{State: from, Sym: LiteralSym(r)})
}

// RemoveWildcard deletes the catch-all edge leaving 'from'.
// Removing an absent edge is a no-op.
func (b *Builder) RemoveWildcard(from StateID) {
	delete(b.transitions, Key{State: from, Sym: WildcardSym()})
}

// MarkAccepting adds id to the accepting-state set.
func (b *Builder) MarkAccepting(id StateID) {
	b.accepting[id] = struct{}{}
}

// SetStartAnchored records whether the pattern suppressed the permissive
// wildcard loop at the start state.
func (b *Builder) SetStartAnchored(anchored bool) {
	b.anchored = anchored
}

// Validate checks that every epsilon chain in the relation terminates.
// The compiler never produces an epsilon cycle, but the builder API allows
// constructing one by hand; the simulator guards against cycles regardless,
// so Validate exists as a diagnostic, not a precondition.
func (b *Builder) Validate() error {
	for key := range b.transitions {
		if key.Sym.Kind != KindEpsilon {
			continue
		}
		visited := map[StateID]struct{}{key.State: {}}
		cur := key.State
		for {
			to, ok := b.transitions[Key{State: cur, Sym: EpsilonSym()}]
			if !ok {
				break
			}
			if _, seen := visited[to]; seen {
				return &BuildError{Message: "epsilon cycle", StateID: to}
			}
			visited[to] = struct{}{}
			cur = to
		}
	}
	return nil
}

// Build finalizes the relation and returns the immutable NFA.
func (b *Builder) Build() *NFA {
	n := &NFA{
		transitions: b.transitions,
		accepting:   b.accepting,
		anchored:    b.anchored,
	}

	for key, to := range b.transitions {
		if key.State > n.maxState {
			n.maxState = key.State
		}
		if to > n.maxState {
			n.maxState = to
		}
		if key.Sym.Kind == KindEpsilon {
			n.hasEpsilon = true
		}
	}
	for id := range b.accepting {
		if id > n.maxState {
			n.maxState = id
		}
	}

	return n
}
