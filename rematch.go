// Package rematch decides whether a text string matches a pattern written
// in a restricted regular-expression syntax: literal characters, the '.'
// wildcard, '\' escapes, the '^'/'$' anchors, and the '?'/'*'/'+'
// quantifiers applying to the immediately preceding literal.
//
// A pattern compiles once into an immutable automaton and may then run
// against any number of inputs, concurrently. Compilation never fails:
// malformed patterns such as dangling escapes or quantifiers with no
// preceding literal compile to defined automata instead of returning
// errors.
//
// Patterns are unanchored by default. A bare pattern matches anywhere in
// the input; '^' pins the match to the start and '$' to the end.
//
// Basic usage:
//
//	re := rematch.Compile(`a*b+c`)
//	re.MatchString("xxaabbc") // true
//	re.MatchString("ac")      // false, 'b' is required
//
// One-shot matching:
//
//	rematch.Match(`^ab?c$`, "ac") // true
//
// Not supported: capture groups, alternation '|', character classes
// '[...]', backreferences. Input is compared rune by rune with no further
// Unicode semantics.
package rematch

import "github.com/coregx/rematch/meta"

// Regex represents a compiled pattern.
//
// A Regex is safe for concurrent use by multiple goroutines, except for
// ResetStats on the underlying engine.
type Regex struct {
	engine  *meta.Engine
	pattern string
}

// Compile compiles a pattern. It never fails; every character sequence,
// including the empty pattern, produces a usable Regex.
//
// Example:
//
//	re := rematch.Compile(`^hello.*$`)
//	re.MatchString("hello world") // true
func Compile(pattern string) *Regex {
	return &Regex{
		engine:  meta.Compile(pattern),
		pattern: pattern,
	}
}

// MustCompile is an alias for Compile, retained so call sites shaped for
// the standard library's regexp package read naturally. Since compilation
// cannot fail, it never panics.
func MustCompile(pattern string) *Regex {
	return Compile(pattern)
}

// CompileWithConfig compiles a pattern with a custom engine configuration.
// The only possible error is an invalid configuration.
//
// Example:
//
//	config := rematch.DefaultConfig()
//	config.EnablePrefilter = false
//	re, err := rematch.CompileWithConfig(`abc+`, config)
func CompileWithConfig(pattern string, config meta.Config) (*Regex, error) {
	engine, err := meta.CompileWithConfig(pattern, config)
	if err != nil {
		return nil, err
	}
	return &Regex{
		engine:  engine,
		pattern: pattern,
	}, nil
}

// DefaultConfig returns the default engine configuration, for customizing
// and passing to CompileWithConfig.
func DefaultConfig() meta.Config {
	return meta.DefaultConfig()
}

// Match reports whether input matches pattern. It is equivalent to
// compiling the pattern and running it once; compile the pattern yourself
// when matching many inputs.
func Match(pattern, input string) bool {
	return Compile(pattern).MatchString(input)
}

// Match reports whether the byte slice b matches the pattern.
func (r *Regex) Match(b []byte) bool {
	return r.engine.IsMatch(string(b))
}

// MatchString reports whether the string s matches the pattern.
func (r *Regex) MatchString(s string) bool {
	return r.engine.IsMatch(s)
}

// String returns the source text used to compile the pattern.
func (r *Regex) String() string {
	return r.pattern
}

// Strategy returns the execution strategy the engine selected for this
// pattern. Useful for debugging and tuning.
func (r *Regex) Strategy() meta.Strategy {
	return r.engine.Strategy()
}

// Stats returns a snapshot of the engine's execution counters.
func (r *Regex) Stats() meta.Stats {
	return r.engine.Stats()
}
