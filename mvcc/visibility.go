package mvcc

// isVisible decides whether version v is visible to transaction t. It
// is a pure function of t's identity, isolation level and snapshot,
// the registry's current state, and v itself — it has no side effects
// and never mutates its arguments.
func isVisible(reg *registry, t *Transaction, v *Version) bool {
	switch t.isolation {
	case ReadUncommittedIsolation:
		return isVisibleReadUncommitted(v)
	case ReadCommittedIsolation:
		return isVisibleReadCommitted(reg, t, v)
	case RepeatableReadIsolation, SnapshotIsolation, SerializableIsolation:
		return isVisibleSnapshot(reg, t, v)
	default:
		panic("mvcc: unsupported isolation level")
	}
}

// isVisibleReadUncommitted: a version is visible iff it hasn't been
// deleted yet, committed or not. Dirty reads are the point of this
// level.
func isVisibleReadUncommitted(v *Version) bool {
	return v.txEnd == 0
}

// isVisibleReadCommitted: a version is visible iff its creator has
// committed (or is t itself), t hasn't deleted it, and either it is
// still live or its deleter hasn't committed. t's own snapshot plays
// no part here — visibility tracks the *current* commit state of
// peers, so two reads of the same key within t can disagree.
func isVisibleReadCommitted(reg *registry, t *Transaction, v *Version) bool {
	if v.txStart != t.id && reg.mustGet(v.txStart).state != CommittedTransaction {
		return false
	}

	if v.txEnd != 0 {
		if v.txEnd == t.id {
			return false
		}
		if reg.mustGet(v.txEnd).state == CommittedTransaction {
			return false
		}
	}

	return true
}

// isVisibleSnapshot implements the shared visibility rule for
// RepeatableRead, Snapshot, and Serializable: a stable view fixed at
// t's begin. The three levels differ only in their commit-time checks
// (see conflict.go).
func isVisibleSnapshot(reg *registry, t *Transaction, v *Version) bool {
	// No versions created by transactions that started after t.
	if v.txStart > t.id {
		return false
	}

	// No versions created by a transaction that was concurrent with
	// t's begin, even if it has since committed: seeing it would be a
	// non-repeatable read.
	if t.InProgress(v.txStart) {
		return false
	}

	// Same "creator must be committed" rule as Read Committed.
	if v.txStart != t.id && reg.mustGet(v.txStart).state != CommittedTransaction {
		return false
	}

	// t never sees its own deletions.
	if v.txEnd == t.id {
		return false
	}

	// A version deleted by a transaction that both started before t
	// and has committed is gone from t's snapshot. Deletions by
	// transactions started after t, or by transactions that were
	// themselves concurrent with t, don't hide the version.
	if v.txEnd != 0 && v.txEnd < t.id && !t.InProgress(v.txEnd) {
		if reg.mustGet(v.txEnd).state == CommittedTransaction {
			return false
		}
	}

	return true
}
