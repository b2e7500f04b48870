package nfa

import "testing"

// wantLiteral asserts that the literal edge (from, r) -> to exists.
func wantLiteral(t *testing.T, n *NFA, from StateID, r rune, to StateID) {
	t.Helper()
	got, ok := n.Literal(from, r)
	if !ok {
		t.Errorf("missing literal edge (%d, %q)", from, r)
		return
	}
	if got != to {
		t.Errorf("literal edge (%d, %q) -> %d, want %d", from, r, got, to)
	}
}

// wantNoLiteral asserts that no literal edge (from, r) exists.
func wantNoLiteral(t *testing.T, n *NFA, from StateID, r rune) {
	t.Helper()
	if to, ok := n.Literal(from, r); ok {
		t.Errorf("unexpected literal edge (%d, %q) -> %d", from, r, to)
	}
}

// wantEpsilon asserts that the epsilon edge from -> to exists.
func wantEpsilon(t *testing.T, n *NFA, from, to StateID) {
	t.Helper()
	got, ok := n.Epsilon(from)
	if !ok {
		t.Errorf("missing epsilon edge from %d", from)
		return
	}
	if got != to {
		t.Errorf("epsilon edge %d -> %d, want -> %d", from, got, to)
	}
}

// wantWildcard asserts that the wildcard edge from -> to exists.
func wantWildcard(t *testing.T, n *NFA, from, to StateID) {
	t.Helper()
	got, ok := n.Wildcard(from)
	if !ok {
		t.Errorf("missing wildcard edge from %d", from)
		return
	}
	if got != to {
		t.Errorf("wildcard edge %d -> %d, want -> %d", from, got, to)
	}
}

func TestCompile_EmptyPattern(t *testing.T) {
	n := Compile("")

	if n.States() != 1 {
		t.Errorf("States() = %d, want 1", n.States())
	}
	if !n.IsAccepting(0) {
		t.Error("start state should accept for the empty pattern")
	}
	wantWildcard(t, n, 0, 0)
	if n.IsStartAnchored() {
		t.Error("empty pattern should not be start anchored")
	}
}

func TestCompile_LiteralChain(t *testing.T) {
	n := Compile("abcd")

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, 'b', 2)
	wantLiteral(t, n, 2, 'c', 3)
	wantLiteral(t, n, 3, 'd', 4)
	wantWildcard(t, n, 0, 0) // unanchored prefix loop
	wantWildcard(t, n, 4, 4) // trailing loop
	if !n.IsAccepting(4) {
		t.Error("final state 4 should accept")
	}
	if n.IsAccepting(0) {
		t.Error("start state should not accept")
	}
	if n.HasEpsilon() {
		t.Error("literal chain should not contain epsilon edges")
	}
}

func TestCompile_StartAnchor(t *testing.T) {
	n := Compile("^ab")

	if !n.IsStartAnchored() {
		t.Error("pattern should be start anchored")
	}
	if to, ok := n.Wildcard(0); ok {
		t.Errorf("anchored pattern has prefix loop 0 -> %d", to)
	}
	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, 'b', 2)
	wantWildcard(t, n, 2, 2)
}

func TestCompile_EndAnchor(t *testing.T) {
	n := Compile("ab$")

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, 'b', 2)
	wantNoLiteral(t, n, 2, '$') // provisional edge removed
	if to, ok := n.Wildcard(2); ok {
		t.Errorf("end-anchored pattern has trailing loop 2 -> %d", to)
	}
	if !n.IsAccepting(2) {
		t.Error("state 2 should accept; '$' consumes no state")
	}
	if n.MaxState() != 2 {
		t.Errorf("MaxState() = %d, want 2", n.MaxState())
	}
}

func TestCompile_DollarMidPattern(t *testing.T) {
	// A '$' that is not the final character stays a literal dollar edge.
	n := Compile("a$b")

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, '$', 2)
	wantLiteral(t, n, 2, 'b', 3)
	wantWildcard(t, n, 3, 3)
	if !n.IsAccepting(3) {
		t.Error("state 3 should accept")
	}
}

func TestCompile_Wildcard(t *testing.T) {
	n := Compile("a.c")

	wantLiteral(t, n, 0, 'a', 1)
	wantWildcard(t, n, 1, 2)
	wantLiteral(t, n, 2, 'c', 3)
}

func TestCompile_LeadingWildcardOverwritesPrefixLoop(t *testing.T) {
	// The default prefix loop and a leading '.' both occupy the
	// (0, Wildcard) key; the '.' edge wins.
	n := Compile(".x")

	wantWildcard(t, n, 0, 1)
	wantLiteral(t, n, 1, 'x', 2)
}

func TestCompile_Escape(t *testing.T) {
	n := Compile(`a\.c`)

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, '.', 2) // escaped dot is a literal
	if to, ok := n.Wildcard(1); ok {
		t.Errorf("escaped dot produced wildcard edge 1 -> %d", to)
	}
	wantLiteral(t, n, 2, 'c', 3)
}

func TestCompile_EscapedBackslash(t *testing.T) {
	n := Compile(`a\\`)

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, '\\', 2)
	if !n.IsAccepting(2) {
		t.Error("state 2 should accept")
	}
}

func TestCompile_DanglingEscape(t *testing.T) {
	// A trailing unescaped backslash pairs with nothing: no edge, no state.
	n := Compile(`ab\`)

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, 'b', 2)
	if !n.IsAccepting(2) {
		t.Error("state 2 should accept; the backslash consumes no state")
	}
	if n.MaxState() != 2 {
		t.Errorf("MaxState() = %d, want 2", n.MaxState())
	}
}

func TestCompile_Optional(t *testing.T) {
	n := Compile("ab?c")

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, 'b', 2) // still present, consumption optional
	wantEpsilon(t, n, 1, 2)      // bypass
	wantLiteral(t, n, 2, 'c', 3)
	if !n.HasEpsilon() {
		t.Error("'?' should introduce an epsilon edge")
	}
}

func TestCompile_Star(t *testing.T) {
	n := Compile("ab*c")

	wantLiteral(t, n, 0, 'a', 1)
	wantNoLiteral(t, n, 1, 'b') // replaced by bypass + self-loop
	wantEpsilon(t, n, 1, 2)
	wantLiteral(t, n, 2, 'b', 2) // self-loop re-consumes 'b'
	wantLiteral(t, n, 2, 'c', 3)
}

func TestCompile_Plus(t *testing.T) {
	n := Compile("ab+c")

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, 'b', 2) // one occurrence stays required
	wantLiteral(t, n, 2, 'b', 2) // self-loop allows more
	wantLiteral(t, n, 2, 'c', 3)
	if n.HasEpsilon() {
		t.Error("'+' should not introduce an epsilon edge")
	}
}

func TestCompile_QuantifierOnEscapedLiteral(t *testing.T) {
	n := Compile(`a\.*b`)

	wantNoLiteral(t, n, 1, '.')
	wantEpsilon(t, n, 1, 2)
	wantLiteral(t, n, 2, '.', 2)
	wantLiteral(t, n, 2, 'b', 3)
}

func TestCompile_OrphanQuantifiers(t *testing.T) {
	// A quantifier with no usable preceding literal adds no edge and
	// consumes no state.
	tests := []struct {
		name    string
		pattern string
		same    string // pattern the result must be structurally equal to
	}{
		{"leading star", "*ab", "ab"},
		{"leading plus", "+ab", "ab"},
		{"leading question", "?ab", "ab"},
		{"after start anchor", "^?ab", "^ab"},
		{"double quantifier", "ab??c", "ab?c"},
		{"quantifier after wildcard", ".*a", ".a"},
		{"only quantifiers", "*+?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.pattern)
			want := Compile(tt.same)

			if got.States() != want.States() {
				t.Errorf("States() = %d, want %d", got.States(), want.States())
			}
			if got.Edges() != want.Edges() {
				t.Errorf("Edges() = %d, want %d", got.Edges(), want.Edges())
			}
			if got.HasEpsilon() != want.HasEpsilon() {
				t.Errorf("HasEpsilon() = %v, want %v", got.HasEpsilon(), want.HasEpsilon())
			}
		})
	}
}

func TestCompile_CaretMidPatternIsLiteral(t *testing.T) {
	n := Compile("a^b")

	wantLiteral(t, n, 0, 'a', 1)
	wantLiteral(t, n, 1, '^', 2)
	wantLiteral(t, n, 2, 'b', 3)
	if n.IsStartAnchored() {
		t.Error("mid-pattern '^' should not anchor")
	}
}

func TestCompile_NeverProducesEpsilonCycle(t *testing.T) {
	// The simulator guards against cycles anyway, but the compiler is not
	// supposed to create one for any input.
	patterns := []string{
		"", "a", "a?", "a*", "a+", "a?b?c?", "a*b*c*", "^a*$", `\?\*\+`,
		"??**++", `a\`, "*", "^", "$", "^$", "a?*+b", ".?.*",
	}

	for _, p := range patterns {
		b := NewBuilder()
		n := Compile(p)
		// Rebuild the relation through a builder to reuse its validator.
		for key, to := range n.transitions {
			switch key.Sym.Kind {
			case KindEpsilon:
				b.AddEpsilon(key.State, to)
			case KindLiteral:
				b.AddLiteral(key.State, key.Sym.Rune, to)
			case KindWildcard:
				b.AddWildcard(key.State, to)
			}
		}
		if err := b.Validate(); err != nil {
			t.Errorf("Compile(%q): %v", p, err)
		}
	}
}

func TestCompile_Idempotent(t *testing.T) {
	inputs := []string{"", "acd", "abcd", "xxabcd", "zzz"}
	for _, pattern := range []string{"a?b?c?d", "^a.c$", `a\.c*`} {
		first := Compile(pattern)
		second := Compile(pattern)
		for _, input := range inputs {
			if a, b := first.Run(input), second.Run(input); a != b {
				t.Errorf("Compile(%q) twice disagrees on %q: %v vs %v",
					pattern, input, a, b)
			}
		}
	}
}
