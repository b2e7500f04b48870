package meta

// requiredLiteral extracts the longest run of pattern characters that any
// accepted input must contain verbatim and adjacently. The prefilter
// searches for this run and rejects inputs that lack it before the
// automaton runs at all.
//
// A run consists of plain and escaped literals that no quantifier touches:
// a literal followed by '?' or '*' is skippable and is dropped, a literal
// followed by '+' is still required once but ends its run (repeats may
// separate it from what follows). Wildcards, anchors and orphaned
// quantifiers break runs without contributing characters. The empty string
// means no usable run exists.
func requiredLiteral(pattern string) string {
	runes := []rune(pattern)

	var longest, run []rune
	flush := func() {
		if len(run) > len(longest) {
			longest = run
		}
		run = nil
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		escaped := false

		if r == '\\' {
			i++
			if i >= len(runes) {
				break // dangling escape pairs with nothing
			}
			r = runes[i]
			escaped = true
		}

		if !escaped {
			switch {
			case r == '.' || r == '$':
				flush()
				continue
			case r == '^' && i == 0:
				continue
			case r == '?' || r == '*' || r == '+':
				// Orphaned quantifier; the quantifier following a literal
				// is consumed by the lookahead below.
				flush()
				continue
			}
		}

		if i+1 < len(runes) {
			switch runes[i+1] {
			case '?', '*':
				i++
				flush()
				continue
			case '+':
				i++
				run = append(run, r)
				flush()
				continue
			}
		}
		run = append(run, r)
	}
	flush()

	return string(longest)
}
