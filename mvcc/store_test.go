package mvcc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreGetRecordsReadsetEvenOnMiss(t *testing.T) {
	reg := newRegistry()
	s := newStore()
	t1 := reg.begin(SerializableIsolation)

	_, ok := s.get(reg, t1, "missing")
	assert.False(t, ok)
	assert.True(t, t1.readset.Contains("missing"))
}

func TestStoreSetThenGetRoundTrips(t *testing.T) {
	reg := newRegistry()
	s := newStore()
	t1 := reg.begin(SerializableIsolation)

	s.set(reg, t1, "x", "hey")
	v, ok := s.get(reg, t1, "x")
	assert.True(t, ok)
	assert.Equal(t, "hey", v)
	assert.True(t, t1.writeset.Contains("x"))
}

func TestStoreDeleteThenGetNotFound(t *testing.T) {
	reg := newRegistry()
	s := newStore()
	t1 := reg.begin(SerializableIsolation)

	s.set(reg, t1, "x", "hey")
	s.delete(reg, t1, "x")

	_, ok := s.get(reg, t1, "x")
	assert.False(t, ok)
}

func TestStoreSetTwiceSameTransactionKeepsBothVersionsInChain(t *testing.T) {
	reg := newRegistry()
	s := newStore()
	t1 := reg.begin(ReadUncommittedIsolation)

	s.set(reg, t1, "x", "first")
	s.set(reg, t1, "x", "second")

	assert.Len(t, s.chains["x"], 2, "both versions stay in the chain; the first is stamped over, not removed")
	assert.Equal(t, t1.id, s.chains["x"][0].txEnd, "overwritten version is stamped, never deleted")

	v, ok := s.get(reg, t1, "x")
	assert.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestStoreDoesNotClobberConcurrentWriters(t *testing.T) {
	reg := newRegistry()
	s := newStore()
	t1 := reg.begin(SnapshotIsolation)
	t2 := reg.begin(SnapshotIsolation)

	s.set(reg, t1, "x", "from t1")
	s.set(reg, t2, "x", "from t2")

	assert.Len(t, s.chains["x"], 2, "t2's write does not stamp t1's in-flight version: neither is visible to the other's snapshot")

	v1, ok := s.get(reg, t1, "x")
	assert.True(t, ok)
	assert.Equal(t, "from t1", v1)

	v2, ok := s.get(reg, t2, "x")
	assert.True(t, ok)
	assert.Equal(t, "from t2", v2)
}
