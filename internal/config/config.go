// Package config holds the one construction-time option spec.md §6
// allows: a database's default isolation level, plus a debug-logging
// toggle for front ends like cmd/mvccql. No env vars, no file
// parsing, no persisted state.
package config

import "github.com/mvcckv/mvcckv/mvcc"

type Config struct {
	// DefaultIsolation is the isolation level every new transaction
	// inherits; there is no per-transaction override.
	DefaultIsolation mvcc.IsolationLevel

	// Debug enables the debug-level trace log (internal/dbg).
	Debug bool
}

// Default returns the configuration used when a caller doesn't build
// one explicitly: Serializable, the strictest level, with logging at
// its normal (non-debug) verbosity.
func Default() Config {
	return Config{
		DefaultIsolation: mvcc.SerializableIsolation,
		Debug:            false,
	}
}
