package engine

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarnThenListThenClear(t *testing.T) {
	l := NewWarningLedger(newTestStore(t))
	now := time.Now()

	l.Warn("guild", "subject", "mod", "spam", now)

	warns := l.List("guild", "subject")
	require.Len(t, warns, 1)
	assert.Equal(t, "spam", warns[0].Reason)
	assert.Equal(t, "mod", warns[0].By)

	l.Clear("guild", "subject")
	assert.Empty(t, l.List("guild", "subject"))
}

func TestWarningsAppendInChronologicalOrder(t *testing.T) {
	l := NewWarningLedger(newTestStore(t))
	base := time.Now()

	for i := 0; i < 5; i++ {
		l.Warn("guild", "subject", "mod", fmt.Sprintf("reason-%d", i), base.Add(time.Duration(i)*time.Minute))
	}

	warns := l.List("guild", "subject")
	require.Len(t, warns, 5)
	assert.Equal(t, "reason-0", warns[0].Reason)
	assert.Equal(t, "reason-4", warns[4].Reason, "most recent warning comes last")
}

func TestWarningsAreScopedPerGuildAndUser(t *testing.T) {
	l := NewWarningLedger(newTestStore(t))
	now := time.Now()

	l.Warn("g1", "u1", "mod", "a", now)
	l.Warn("g1", "u2", "mod", "b", now)
	l.Warn("g2", "u1", "mod", "c", now)

	assert.Equal(t, 1, l.Count("g1", "u1"))
	assert.Equal(t, 1, l.Count("g1", "u2"))
	assert.Equal(t, 1, l.Count("g2", "u1"))

	l.Clear("g1", "u1")
	assert.Equal(t, 0, l.Count("g1", "u1"))
	assert.Equal(t, 1, l.Count("g2", "u1"), "clearing one guild leaves the other untouched")
}

func TestClearUnknownSubjectIsANoOp(t *testing.T) {
	l := NewWarningLedger(newTestStore(t))

	l.Clear("guild", "nobody")
	assert.Empty(t, l.List("guild", "nobody"))
}

func TestWarningsPersistAcrossReload(t *testing.T) {
	store := newTestStore(t)
	now := time.Now()

	l := NewWarningLedger(store)
	l.Warn("guild", "subject", "mod", "spam", now)
	l.Warn("guild", "subject", "mod", "flood", now.Add(time.Minute))

	reloaded := NewWarningLedger(store)
	warns := reloaded.List("guild", "subject")
	require.Len(t, warns, 2)
	assert.Equal(t, "flood", warns[1].Reason)
}

func TestListReturnsACopy(t *testing.T) {
	l := NewWarningLedger(newTestStore(t))

	l.Warn("guild", "subject", "mod", "original", time.Now())

	warns := l.List("guild", "subject")
	warns[0].Reason = "tampered"

	assert.Equal(t, "original", l.List("guild", "subject")[0].Reason)
}
