package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmitFloodsOnSixthRapidEvent(t *testing.T) {
	rl := NewRateLimiter(6, 5)
	base := time.Now()

	for i := 0; i < 5; i++ {
		v := rl.Admit("user", base.Add(time.Duration(i)*150*time.Millisecond))
		require.Equal(t, Allowed, v, "event %d should be allowed", i+1)
	}

	v := rl.Admit("user", base.Add(900*time.Millisecond))
	assert.Equal(t, Flood, v, "sixth event within one second should flood")
}

func TestAdmitSpacedEventsNeverFlood(t *testing.T) {
	rl := NewRateLimiter(6, 5)
	base := time.Now()

	for i := 0; i < 10; i++ {
		v := rl.Admit("user", base.Add(time.Duration(i)*2*time.Second))
		assert.Equal(t, Allowed, v, "event %d spaced 2s apart should be allowed", i+1)
	}
}

func TestFloodClearsWindow(t *testing.T) {
	rl := NewRateLimiter(3, 5)
	base := time.Now()

	require.Equal(t, Allowed, rl.Admit("user", base))
	require.Equal(t, Allowed, rl.Admit("user", base.Add(100*time.Millisecond)))
	require.Equal(t, Flood, rl.Admit("user", base.Add(200*time.Millisecond)))

	// The window was reset: the very next event starts fresh instead of
	// immediately re-triggering.
	assert.Equal(t, 0, rl.WindowSize("user"))
	assert.Equal(t, Allowed, rl.Admit("user", base.Add(300*time.Millisecond)))
}

func TestUsersHaveIndependentWindows(t *testing.T) {
	rl := NewRateLimiter(3, 5)
	base := time.Now()

	require.Equal(t, Allowed, rl.Admit("a", base))
	require.Equal(t, Allowed, rl.Admit("a", base))
	require.Equal(t, Flood, rl.Admit("a", base))

	assert.Equal(t, Allowed, rl.Admit("b", base), "user b is unaffected by user a's flood")
}

func TestMisconfigurationIsFloorBounded(t *testing.T) {
	rl := NewRateLimiter(0, 0)
	base := time.Now()

	// maxEvents floors to 2, window to 1s: a single message never floods.
	assert.Equal(t, Allowed, rl.Admit("user", base))
	assert.Equal(t, Flood, rl.Admit("user", base.Add(10*time.Millisecond)))
}
