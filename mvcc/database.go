package mvcc

import "github.com/mvcckv/mvcckv/internal/dbg"

// Database is the Coordinator façade of spec.md §2: it exclusively
// owns the store and the transaction registry, and every mutation a
// client makes goes through it so that version-chain updates and
// registry updates are observed atomically by later operations.
//
// Database presumes a single logical executor interleaving
// transactions (spec.md §5); it is not safe for concurrent use from
// multiple goroutines without an external mutex.
type Database struct {
	defaultIsolation IsolationLevel
	store            *store
	registry         *registry
	log              *dbg.Logger
}

// NewDatabase constructs an empty database. isolation is the default
// every new connection's transactions inherit — the one piece of
// configuration spec.md §6 allows.
func NewDatabase(isolation IsolationLevel, opts ...Option) *Database {
	d := &Database{
		defaultIsolation: isolation,
		store:            newStore(),
		registry:         newRegistry(),
		log:              dbg.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.log.Debug("database opened, default isolation=%s", isolation)
	return d
}

// NewConnection returns a new connection to the database, with no
// transaction open.
func (d *Database) NewConnection() *Connection {
	return &Connection{db: d}
}

// InProgress returns the ids of every transaction currently in the
// InProgress state. Exposed for diagnostics (cmd/mvccql's .status
// meta-command); spec.md places no correctness requirement on it.
func (d *Database) InProgress() []uint64 {
	ids := d.registry.inProgressIDs()
	out := make([]uint64, 0, ids.Len())
	iter := ids.Iter()
	for ok := iter.First(); ok; ok = iter.Next() {
		out = append(out, iter.Key())
	}
	return out
}

// begin allocates the next transaction id, captures the in-progress
// snapshot, and registers the transaction in the InProgress state.
func (d *Database) begin() *Transaction {
	t := d.registry.begin(d.defaultIsolation)
	d.log.Debug("tx %d: begin (%s), snapshot=%v", t.id, t.isolation, d.InProgress())
	return t
}

// complete runs the conflict detector (if requested is Committed) and
// transitions t's state. On a conflict, t is left Aborted and the
// error is returned; complete never leaves t InProgress.
func (d *Database) complete(t *Transaction, requested TransactionState) error {
	if requested == CommittedTransaction {
		if err := checkConflicts(d.registry, t); err != nil {
			d.log.Debug("tx %d: commit rejected: %v", t.id, err)
			d.registry.setState(t, AbortedTransaction)
			return err
		}
	}

	d.registry.setState(t, requested)
	d.log.Debug("tx %d: %s", t.id, requested)
	return nil
}

// get records key in t's readset and returns the newest version
// visible to t, if any.
func (d *Database) get(t *Transaction, key string) (string, bool) {
	return d.store.get(d.registry, t, key)
}

// set stamps any version of key currently visible to t with txEnd=t,
// then appends a new live version.
func (d *Database) set(t *Transaction, key, value string) {
	d.store.set(d.registry, t, key, value)
}

// delete stamps any version of key currently visible to t with
// txEnd=t, appending nothing.
func (d *Database) delete(t *Transaction, key string) {
	d.store.delete(d.registry, t, key)
}

func (d *Database) transaction(id uint64) (*Transaction, bool) {
	return d.registry.get(id)
}
