package meta

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/rematch/dfa"
	"github.com/coregx/rematch/nfa"
)

// Compile builds an engine for the pattern with the default configuration.
// It never fails: the pattern compiler accepts every character sequence and
// the default configuration always validates.
func Compile(pattern string) *Engine {
	engine, err := CompileWithConfig(pattern, DefaultConfig())
	if err != nil {
		// DefaultConfig validates by construction.
		panic("rematch: Compile(" + pattern + "): " + err.Error())
	}
	return engine
}

// CompileWithConfig builds an engine for the pattern with a custom
// configuration. The only possible error is an invalid configuration; the
// pattern itself cannot fail to compile.
func CompileWithConfig(pattern string, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	n := nfa.Compile(pattern)

	e := &Engine{
		nfa:      n,
		strategy: SelectStrategy(n, config),
		config:   config,
	}
	e.simPool.New = func() any { return nfa.NewSimulator(n) }

	if e.strategy == UseDFA {
		walker, err := dfa.New(n)
		if err != nil {
			// Structurally unreachable after SelectStrategy; fall back to
			// the simulation rather than fail.
			e.strategy = UseNFA
		} else {
			e.walker = walker
		}
	}

	if config.EnablePrefilter {
		e.prefilter = buildPrefilter(pattern, config)
	}

	return e, nil
}

// buildPrefilter constructs the required-literal prefilter, or nil when the
// pattern has no literal run long enough to be worth scanning for.
func buildPrefilter(pattern string, config Config) *ahocorasick.Automaton {
	lit := requiredLiteral(pattern)
	if len(lit) < config.MinLiteralLen {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	builder.AddPattern([]byte(lit))
	auto, err := builder.Build()
	if err != nil {
		// A prefilter is an optimization; matching works without one.
		return nil
	}
	return auto
}
