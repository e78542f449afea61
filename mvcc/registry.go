package mvcc

import (
	"fmt"

	"github.com/tidwall/btree"
)

// registry is the mapping from transaction id to transaction record,
// plus the monotonically increasing id allocator. Ids start at 1; the
// 0 id means "no transaction" to callers that carry an optional id.
//
// The registry is owned exclusively by the Database. Every other
// component (visibility, conflict detection) only ever receives a
// read-only *Transaction obtained through it.
type registry struct {
	transactions btree.Map[uint64, *Transaction]
	nextID       uint64
}

func newRegistry() *registry {
	return &registry{nextID: 1}
}

// inProgressIDs returns the ids of every transaction currently in the
// InProgress state. Used to build a new transaction's snapshot.
func (r *registry) inProgressIDs() btree.Set[uint64] {
	var ids btree.Set[uint64]
	iter := r.transactions.Iter()
	for ok := iter.First(); ok; ok = iter.Next() {
		if iter.Value().state == InProgressTransaction {
			ids.Insert(iter.Key())
		}
	}
	return ids
}

// begin allocates the next id, captures the current in-progress set as
// the new transaction's snapshot, and registers it.
func (r *registry) begin(isolation IsolationLevel) *Transaction {
	t := &Transaction{
		id:         r.nextID,
		isolation:  isolation,
		state:      InProgressTransaction,
		inprogress: r.inProgressIDs(),
	}
	r.nextID++
	r.transactions.Set(t.id, t)
	return t
}

// get looks up a transaction by id. Reports false if the id was never
// assigned by this registry.
func (r *registry) get(id uint64) (*Transaction, bool) {
	return r.transactions.Get(id)
}

// mustGet looks up a transaction that the caller already knows must
// exist (e.g. a version's txStart/txEnd, or a snapshot member). A miss
// here means the registry's invariants have been violated elsewhere,
// which is a programming error, not a recoverable condition.
func (r *registry) mustGet(id uint64) *Transaction {
	t, ok := r.get(id)
	if !ok {
		panic(fmt.Sprintf("mvcc: transaction %d missing from registry", id))
	}
	return t
}

// setState transitions t to state. Callers are responsible for having
// already run any commit-time checks.
func (r *registry) setState(t *Transaction, state TransactionState) {
	t.state = state
}

// forEachAscending visits every registered transaction in ascending id
// order, stopping early if fn returns false. Ascending order gives the
// conflict detector spec.md's "scan peers by ascending id" tie-break.
func (r *registry) forEachAscending(fn func(*Transaction) bool) {
	iter := r.transactions.Iter()
	for ok := iter.First(); ok; ok = iter.Next() {
		if !fn(iter.Value()) {
			return
		}
	}
}
