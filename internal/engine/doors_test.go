package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PancyStudios/CovenBotGo/pkg/config"
)

func newTestDoors(t *testing.T) (*DoorsManager, *EconomyLedger) {
	t.Helper()
	economy := NewEconomyLedger(newTestStore(t), 250)
	m := NewDoorsManager(config.DefaultSettings().Doors, economy)
	return m, economy
}

// rollSequence replaces the manager's rng with a fixed script of outcomes.
func rollSequence(m *DoorsManager, rolls ...float64) {
	i := 0
	m.roll = func() float64 {
		r := rolls[i%len(rolls)]
		i++
		return r
	}
}

func TestStartCreatesFreshSession(t *testing.T) {
	m, _ := newTestDoors(t)

	s := m.Start("111")
	assert.Equal(t, 1, s.Room)
	assert.Equal(t, 3, s.HP)
	assert.False(t, s.Hidden)
	assert.Equal(t, 0, s.Reward)

	// Starting again overwrites the run in progress.
	rollSequence(m, 0.99)
	m.Open("111")
	s = m.Start("111")
	assert.Equal(t, 1, s.Room)
}

func TestOpenWithoutSessionIsReportedNotFatal(t *testing.T) {
	m, _ := newTestDoors(t)

	_, ok := m.Open("ghost")
	assert.False(t, ok)
	_, ok = m.Hide("ghost")
	assert.False(t, ok)
	assert.False(t, m.Quit("ghost"))
}

func TestCompletionSettlesRewardPlusBonusExactlyOnce(t *testing.T) {
	m, economy := newTestDoors(t)
	rollSequence(m, 0.99)              // always loot
	m.randInt = func(_, _ int) int { return 2 } // every loot pays 2

	m.Start("111")

	var last OpenResult
	for {
		res, ok := m.Open("111")
		require.True(t, ok)
		last = res
		if res.Completed {
			break
		}
		require.Less(t, res.Session.Room, 20, "run must complete before room 20 is exceeded")
	}

	// Room goes 1→20 over 19 loot doors at 2 apiece, plus the 50 bonus.
	assert.Equal(t, 19*2, last.Session.Reward)
	assert.Equal(t, 19*2+50, last.Settled)
	assert.Equal(t, 19*2+50, economy.Balance("111"), "settlement is credited exactly once")

	_, active := m.Session("111")
	assert.False(t, active, "completed session is removed")
}

func TestDeathSettlesAccumulatedRewardWithoutBonus(t *testing.T) {
	m, economy := newTestDoors(t)
	m.randInt = func(_, _ int) int { return 3 }
	// Two loot doors, then monsters until death.
	rollSequence(m, 0.99, 0.99, 0.0, 0.0, 0.0)

	m.Start("111")

	var last OpenResult
	for i := 0; i < 5; i++ {
		res, ok := m.Open("111")
		require.True(t, ok)
		last = res
	}

	require.True(t, last.Died)
	assert.Equal(t, 0, last.Session.HP)
	assert.Equal(t, 6, last.Settled, "death settles the pre-death reward, no bonus")
	assert.Equal(t, 6, economy.Balance("111"))

	_, active := m.Session("111")
	assert.False(t, active, "dead session is removed")
}

func TestHideShavesDangerForOneDoor(t *testing.T) {
	m, _ := newTestDoors(t)
	// 0.1 lands in the monster band (0.22) unless hidden, which shaves the
	// 0.20 hide bonus off it.
	rollSequence(m, 0.1)

	m.Start("111")
	_, ok := m.Hide("111")
	require.True(t, ok)

	res, ok := m.Open("111")
	require.True(t, ok)
	assert.NotEqual(t, OutcomeMonster, res.Outcome)
	assert.False(t, res.Session.Hidden, "opening a door always resets hidden")

	// The bonus applies to one door only: the same roll is a monster now.
	res, ok = m.Open("111")
	require.True(t, ok)
	assert.Equal(t, OutcomeMonster, res.Outcome)
	assert.Equal(t, 2, res.Session.HP)
}

func TestHideIsIdempotent(t *testing.T) {
	m, _ := newTestDoors(t)

	m.Start("111")
	s1, ok := m.Hide("111")
	require.True(t, ok)
	s2, ok := m.Hide("111")
	require.True(t, ok)

	assert.Equal(t, s1, s2)
	assert.True(t, s2.Hidden)
}

func TestSafePassageAdvancesWithoutLoot(t *testing.T) {
	m, _ := newTestDoors(t)
	rollSequence(m, 0.3) // inside monster+safe band, outside monster band

	m.Start("111")
	res, ok := m.Open("111")
	require.True(t, ok)

	assert.Equal(t, OutcomeSafe, res.Outcome)
	assert.Equal(t, 2, res.Session.Room)
	assert.Equal(t, 0, res.Session.Reward)
}

func TestQuitForfeitsAccumulatedReward(t *testing.T) {
	m, economy := newTestDoors(t)
	rollSequence(m, 0.99)
	m.randInt = func(_, _ int) int { return 4 }

	m.Start("111")
	res, _ := m.Open("111")
	require.Equal(t, 4, res.Session.Reward)

	require.True(t, m.Quit("111"))
	assert.Equal(t, 0, economy.Balance("111"), "voluntary quit settles nothing")

	_, active := m.Session("111")
	assert.False(t, active)
}
