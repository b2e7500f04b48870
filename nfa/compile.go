package nfa

// compiler holds the bookkeeping of the single left-to-right scan:
// a monotonically incrementing state counter, the pending-escape and anchor
// flags, and the last-literal slot that quantifiers attach their edges to.
//
// The counter only advances for characters that consume a state. Anchors,
// the backslash and the quantifiers consume none, so their cases simply
// never increment instead of incrementing and handing the state back.
type compiler struct {
	b     *Builder
	state StateID

	escape    bool // backslash read, next character is a literal
	anchored  bool // pattern began with '^'
	endAnchor bool // '$' was the character just processed

	// Last-literal slot. Only plain and escaped literals fill it; wildcards,
	// anchors and quantifiers clear it, which makes a quantifier with no
	// usable predecessor a no-op.
	lastLit  rune
	lastFrom StateID
	lastTo   StateID
	haveLast bool
}

// Compile translates a pattern into an automaton. It never fails: every
// character sequence, including the empty pattern, a dangling escape, or a
// quantifier with no preceding literal, yields a defined automaton.
//
// The restricted syntax: literal runes, '.' wildcard, '\' escape, '^'/'$'
// anchors, and the '?'/'*'/'+' quantifiers applying to the immediately
// preceding literal.
func Compile(pattern string) *NFA {
	c := &compiler{b: NewBuilder()}

	// Default unanchored prefix loop: arbitrary input is tolerated before
	// the pattern begins. A leading '^' removes it; a leading '.' overwrites
	// it, since both claim the (0, Wildcard) key. The overwrite trades the
	// search semantics of that one state for the wildcard's forward edge.
	c.b.AddWildcard(0, 0)

	for i, r := range []rune(pattern) {
		c.step(i, r)
	}
	c.finish()

	return c.b.Build()
}

// step processes one pattern character.
func (c *compiler) step(i int, r rune) {
	if c.escape {
		c.escape = false
		c.endAnchor = false
		c.literal(r)
		return
	}

	// The end-anchor flag only survives to finish if '$' was the very
	// last character of the pattern.
	c.endAnchor = false

	switch {
	case r == '^' && i == 0:
		c.anchored = true
		c.b.RemoveWildcard(0)

	case r == '\\':
		c.escape = true

	case r == '.':
		c.state++
		c.b.AddWildcard(c.state-1, c.state)
		c.haveLast = false

	case r == '$':
		// Provisional literal edge; removed again in finish when the '$'
		// turns out to be the final character.
		c.state++
		c.b.AddLiteral(c.state-1, '$', c.state)
		c.haveLast = false
		c.endAnchor = true

	case r == '?':
		// Epsilon bypass around the previous literal: its consumption
		// becomes optional.
		if c.haveLast {
			c.b.AddEpsilon(c.lastFrom, c.lastTo)
		}
		c.haveLast = false

	case r == '*':
		// The previous literal becomes skippable (epsilon bypass) and
		// repeatable (self-loop at its destination). Its original edge is
		// removed so the only ways forward are the bypass and the loop.
		if c.haveLast {
			c.b.RemoveLiteral(c.lastFrom, c.lastLit)
			c.b.AddEpsilon(c.lastFrom, c.lastTo)
			c.b.AddLiteral(c.lastTo, c.lastLit, c.lastTo)
		}
		c.haveLast = false

	case r == '+':
		// One occurrence was already consumed by the literal's own edge;
		// the self-loop at its destination allows more.
		if c.haveLast {
			c.b.AddLiteral(c.lastTo, c.lastLit, c.lastTo)
		}
		c.haveLast = false

	default:
		c.literal(r)
	}
}

// literal adds the edge for a plain or escaped literal rune and records it
// in the last-literal slot.
func (c *compiler) literal(r rune) {
	c.state++
	c.b.AddLiteral(c.state-1, r, c.state)
	c.lastLit = r
	c.lastFrom = c.state - 1
	c.lastTo = c.state
	c.haveLast = true
}

// finish applies the post-scan rules.
//
// A still-pending escape (pattern ended in an unescaped '\') is dropped
// silently: the backslash consumed no state and paired with no character,
// so there is nothing to undo.
func (c *compiler) finish() {
	if c.endAnchor {
		// '$' as the very last character consumes no state after all; its
		// provisional edge goes away and, by suppressing the trailing
		// wildcard loop, nothing after the matched input is tolerated.
		c.b.RemoveLiteral(c.state-1, '$')
		c.state--
	} else {
		// Arbitrary trailing input is permitted once the pattern is
		// satisfied.
		c.b.AddWildcard(c.state, c.state)
	}

	c.b.MarkAccepting(c.state)
	c.b.SetStartAnchored(c.anchored)
}
