package mvcc

import (
	"github.com/tidwall/btree"
)

// TransactionState tracks where a transaction sits in its lifecycle.
// It moves from InProgress to exactly one of Committed or Aborted, and
// never moves again.
type TransactionState uint8

const (
	InProgressTransaction TransactionState = iota
	CommittedTransaction
	AbortedTransaction
)

func (s TransactionState) String() string {
	switch s {
	case InProgressTransaction:
		return "in progress"
	case CommittedTransaction:
		return "committed"
	case AbortedTransaction:
		return "aborted"
	default:
		return "unknown state"
	}
}

// Transaction is the registry's record for one transaction: its
// identity, isolation level, lifecycle state, the snapshot of peers
// that were in progress when it began, and the keys it has read or
// written since.
//
// A Transaction is owned by the registry; visibility and conflict
// checks only ever read it.
type Transaction struct {
	id        uint64
	isolation IsolationLevel
	state     TransactionState

	// inprogress is fixed at begin and never mutated again. Used by
	// RepeatableRead and stricter levels.
	inprogress btree.Set[uint64]

	// writeset and readset grow over the transaction's lifetime.
	// writeset is used by Snapshot and Serializable's commit-time
	// conflict checks; readset only by Serializable's.
	writeset btree.Set[string]
	readset  btree.Set[string]
}

// ID returns the transaction's unique, strictly increasing identifier.
func (t *Transaction) ID() uint64 { return t.id }

// Isolation returns the isolation level the transaction runs under.
func (t *Transaction) Isolation() IsolationLevel { return t.isolation }

// State returns the transaction's current lifecycle state.
func (t *Transaction) State() TransactionState { return t.state }

// InProgress reports whether txID was in progress at the moment this
// transaction began.
func (t *Transaction) InProgress(txID uint64) bool {
	return t.inprogress.Contains(txID)
}

func setsShareKeys(a, b btree.Set[string]) bool {
	ai := a.Iter()
	for ok := ai.First(); ok; ok = ai.Next() {
		if b.Contains(ai.Key()) {
			return true
		}
	}
	return false
}
