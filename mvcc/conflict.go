package mvcc

// checkConflicts runs the commit-time conflict detector for t. It is
// only invoked when t requests commit, and only does anything under
// Snapshot and Serializable; ReadUncommitted, ReadCommitted, and
// RepeatableRead always succeed.
//
// Write-write conflicts are checked first and take precedence over
// read-write conflicts when both would fire, per spec's resolution of
// that ambiguity: write-write is the stronger violation.
func checkConflicts(reg *registry, t *Transaction) error {
	switch t.isolation {
	case SnapshotIsolation:
		if hasConflict(reg, t, writeWriteConflicts) {
			return ErrWriteWriteConflict
		}
	case SerializableIsolation:
		if hasConflict(reg, t, writeWriteConflicts) {
			return ErrWriteWriteConflict
		}
		if hasConflict(reg, t, readWriteConflicts) {
			return ErrReadWriteConflict
		}
	}
	return nil
}

func writeWriteConflicts(t, u *Transaction) bool {
	return setsShareKeys(t.writeset, u.writeset)
}

func readWriteConflicts(t, u *Transaction) bool {
	return setsShareKeys(t.readset, u.writeset) || setsShareKeys(t.writeset, u.readset)
}

// hasConflict reports whether any committed transaction concurrent
// with t trips conflictFn. "Concurrent with t" means either it was in
// t's in-progress snapshot, or it started after t did (t.id < u.id).
// t itself is excluded. Peers are visited in ascending id order so the
// outcome — and the specific conflict reported when more than one
// peer would qualify — is deterministic regardless of map iteration
// order.
func hasConflict(reg *registry, t *Transaction, conflictFn func(t, u *Transaction) bool) bool {
	found := false
	reg.forEachAscending(func(u *Transaction) bool {
		if u.id == t.id || u.state != CommittedTransaction {
			return true
		}
		if !(t.InProgress(u.id) || t.id < u.id) {
			return true
		}
		if conflictFn(t, u) {
			found = true
			return false
		}
		return true
	})
	return found
}
