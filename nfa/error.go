package nfa

import "fmt"

// BuildError reports a malformed relation detected by Builder.Validate.
// Pattern compilation itself never fails: every pattern string, including
// dangling escapes and orphaned quantifiers, produces a usable automaton.
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return fmt.Sprintf("nfa: build error at state %d: %s", e.StateID, e.Message)
}
