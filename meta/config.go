// Package meta implements the engine orchestrator that selects how a
// compiled pattern is executed.
//
// The orchestrator coordinates three pieces:
//   - a required-literal prefilter (Aho-Corasick) that rejects inputs which
//     cannot possibly match, before any automaton work
//   - a deterministic walker for epsilon-free relations
//   - the epsilon-closure set simulation as the general engine
//
// Strategy selection is automatic and purely structural: a relation without
// epsilon edges runs on the walker, everything else on the simulation. Both
// strategies produce identical decisions; selection only affects speed.
package meta

// Config controls orchestrator behavior.
//
// Example:
//
//	config := meta.DefaultConfig()
//	config.EnableDFA = false // force set simulation for every pattern
//	engine, err := meta.CompileWithConfig("a+b", config)
type Config struct {
	// EnableDFA enables the deterministic walker for epsilon-free
	// relations. When false, every pattern runs on the set simulation.
	// Default: true
	EnableDFA bool

	// EnablePrefilter enables the required-literal prefilter.
	// When false, no prefilter is built even if the pattern has a usable
	// literal run.
	// Default: true
	EnablePrefilter bool

	// MinLiteralLen is the minimum byte length of a required literal run
	// for the prefilter to be worth building. Shorter runs reject too
	// little input to pay for the scan.
	// Default: 2
	MinLiteralLen int
}

// DefaultConfig returns a configuration with sensible defaults: both the
// walker fast path and the prefilter enabled, with prefilter literals of at
// least two bytes.
func DefaultConfig() Config {
	return Config{
		EnableDFA:       true,
		EnablePrefilter: true,
		MinLiteralLen:   2,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MinLiteralLen: 1 to 64 (only checked when the prefilter is enabled)
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if c.MinLiteralLen < 1 || c.MinLiteralLen > 64 {
			return &ConfigError{
				Field:   "MinLiteralLen",
				Message: "must be between 1 and 64",
			}
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "rematch: invalid config: " + e.Field + ": " + e.Message
}
