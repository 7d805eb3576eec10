package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PancyStudios/CovenBotGo/pkg/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{0, 100},
		{1, 100},
		{2, 200},
		{5, 500},
		{10, 1000},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Threshold(tt.level), "Threshold(%d)", tt.level)
	}
}

func TestGrantCreatesUserLazily(t *testing.T) {
	l := NewProgressionLedger(newTestStore(t))

	assert.Equal(t, 0, l.Size())
	gain := l.Grant("111", 10)

	assert.Equal(t, 10, gain.XP)
	assert.Equal(t, 0, gain.Level)
	assert.False(t, gain.LeveledUp)
	assert.Equal(t, 1, l.Size())
}

func TestGrantLevelsAtMostOneStep(t *testing.T) {
	l := NewProgressionLedger(newTestStore(t))

	// One grant that jumps past both the level-1 and level-2 thresholds
	// still levels only once; the excess carries over.
	gain := l.Grant("111", 250)
	require.True(t, gain.LeveledUp)
	assert.Equal(t, 1, gain.Level)
	assert.Equal(t, 250, gain.XP)

	// The next grant picks up the carried-over excess: 260 >= Threshold(2).
	gain = l.Grant("111", 10)
	require.True(t, gain.LeveledUp)
	assert.Equal(t, 2, gain.Level)

	gain = l.Grant("111", 10)
	assert.False(t, gain.LeveledUp)
	assert.Equal(t, 2, gain.Level)
}

func TestXPNeverCreditedPastThresholdWithoutLeveling(t *testing.T) {
	l := NewProgressionLedger(newTestStore(t))

	for i := 0; i < 200; i++ {
		gain := l.Grant("111", 15)
		if gain.Level > 0 {
			assert.GreaterOrEqual(t, gain.XP, Threshold(gain.Level),
				"xp must always cover the held level's threshold")
		}
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	l := NewProgressionLedger(newTestStore(t))

	prev := 0
	for i := 0; i < 100; i++ {
		gain := l.Grant("111", 7)
		require.GreaterOrEqual(t, gain.Level, prev, "level must never decrease")
		require.LessOrEqual(t, gain.Level-prev, 1, "level rises at most one step per grant")
		prev = gain.Level
	}
}

func TestProgressionPersistsAcrossReload(t *testing.T) {
	store := newTestStore(t)

	l := NewProgressionLedger(store)
	l.Grant("111", 120)
	l.Grant("222", 40)

	reloaded := NewProgressionLedger(store)
	assert.Equal(t, 2, reloaded.Size())

	u := reloaded.Get("111")
	assert.Equal(t, 120, u.XP)
	assert.Equal(t, 1, u.Level)
}

func TestTopOrdersByLevelThenXP(t *testing.T) {
	l := NewProgressionLedger(newTestStore(t))

	l.Grant("low", 50)
	l.Grant("mid", 150)
	l.Grant("high", 400)
	l.Grant("high", 10) // second step to level 2

	top := l.Top(2)
	require.Len(t, top, 2)
	assert.Equal(t, "high", top[0].UserID)
	assert.Equal(t, "mid", top[1].UserID)
}
