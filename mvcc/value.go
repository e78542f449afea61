package mvcc

// Version is one historical value of a key. txStart is the id of the
// transaction that created it; txEnd is the id of the transaction that
// logically deleted or overwrote it, or 0 if it is still live.
//
// Versions are never mutated except for txEnd, which is never reset to
// 0. A version whose txEnd is already set but whose deletion does not
// hide it from a writer (for example because the deleter has not
// committed, or aborted) is stamped again with that writer's id.
type Version struct {
	txStart uint64
	txEnd   uint64
	value   string
}

func newVersion(txStart uint64, value string) *Version {
	return &Version{txStart: txStart, value: value}
}

func (v *Version) deletedBy(txID uint64) {
	v.txEnd = txID
}
