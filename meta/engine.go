package meta

import (
	"sync"
	"sync/atomic"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/rematch/dfa"
	"github.com/coregx/rematch/nfa"
)

// Engine executes a compiled pattern against inputs.
//
// The automaton, walker and prefilter are immutable after compilation;
// per-run mutable state (the simulator's active-state sets) lives in a
// sync.Pool. Multiple goroutines can therefore call IsMatch on the same
// Engine concurrently.
//
// Example:
//
//	engine, err := meta.CompileWithConfig("^ab*c$", meta.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	engine.IsMatch("abbbc") // true
type Engine struct {
	// stats MUST be the first field for 8-byte alignment of its uint64
	// counters on 32-bit platforms.
	stats Stats

	nfa    *nfa.NFA
	walker *dfa.Walker

	// prefilter holds the pattern's required literal run. Inputs without
	// the run cannot match and are rejected before the automaton runs.
	// Nil when the pattern has no usable run or prefiltering is disabled.
	prefilter *ahocorasick.Automaton

	// simPool holds *nfa.Simulator values so concurrent set-simulation
	// runs don't share active-state sets.
	simPool sync.Pool

	strategy Strategy
	config   Config
}

// Stats tracks execution counters, maintained atomically so they stay
// consistent under concurrent IsMatch calls.
type Stats struct {
	// NFARuns counts runs executed by the set simulation.
	NFARuns uint64

	// DFARuns counts runs executed by the deterministic walker.
	DFARuns uint64

	// PrefilterRejects counts inputs rejected by the required-literal
	// prefilter without running any automaton.
	PrefilterRejects uint64
}

// IsMatch reports whether the input matches the compiled pattern.
func (e *Engine) IsMatch(input string) bool {
	if e.prefilter != nil && !e.prefilter.IsMatch([]byte(input)) {
		atomic.AddUint64(&e.stats.PrefilterRejects, 1)
		return false
	}

	if e.walker != nil {
		atomic.AddUint64(&e.stats.DFARuns, 1)
		return e.walker.Run(input)
	}

	atomic.AddUint64(&e.stats.NFARuns, 1)
	sim := e.simPool.Get().(*nfa.Simulator)
	matched := sim.Run(input)
	e.simPool.Put(sim)
	return matched
}

// Strategy returns the execution strategy selected for this engine.
func (e *Engine) Strategy() Strategy {
	return e.strategy
}

// HasPrefilter reports whether a required-literal prefilter was built.
func (e *Engine) HasPrefilter() bool {
	return e.prefilter != nil
}

// NFA returns the compiled automaton.
func (e *Engine) NFA() *nfa.NFA {
	return e.nfa
}

// Stats returns a snapshot of the execution counters.
func (e *Engine) Stats() Stats {
	return Stats{
		NFARuns:          atomic.LoadUint64(&e.stats.NFARuns),
		DFARuns:          atomic.LoadUint64(&e.stats.DFARuns),
		PrefilterRejects: atomic.LoadUint64(&e.stats.PrefilterRejects),
	}
}

// ResetStats resets the execution counters to zero.
func (e *Engine) ResetStats() {
	atomic.StoreUint64(&e.stats.NFARuns, 0)
	atomic.StoreUint64(&e.stats.DFARuns, 0)
	atomic.StoreUint64(&e.stats.PrefilterRejects, 0)
}
