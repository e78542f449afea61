package mvcc

import "github.com/mvcckv/mvcckv/internal/dbg"

// WithLogger overrides the logger a Database traces through.
// NewDatabase defaults to dbg.Default(); pass dbg.Discard() to turn
// tracing off entirely, or a Logger at LevelDebug to see every
// begin, commit (including rejected commits) and abort. get, set and
// delete are not traced.
func WithLogger(l *dbg.Logger) Option {
	return func(d *Database) { d.log = l }
}

// Option configures a Database at construction time. The only
// requirement spec.md places on configuration is the default
// isolation level (a positional argument to NewDatabase); Option
// covers everything else that is this module's own addition (today,
// just logging).
type Option func(*Database)
