package engine

import (
	"sync"
	"time"
)

// Verdict is the rate limiter's classification of one inbound event.
type Verdict int

const (
	// Allowed means the event passed the sliding window check.
	Allowed Verdict = iota
	// Flood means the user exceeded the allowed event count within the window.
	Flood
)

// RateLimiter keeps a sliding window of recent event timestamps per user.
// Windows are process-local and never persisted.
type RateLimiter struct {
	mu        sync.Mutex
	windows   map[string][]time.Time
	maxEvents int
	window    time.Duration
}

// NewRateLimiter creates a limiter. Both parameters are floor-bounded so a
// misconfigured zero-width or zero-count window cannot flag every message.
func NewRateLimiter(maxEvents, windowSeconds int) *RateLimiter {
	if maxEvents < 2 {
		maxEvents = 2
	}
	if windowSeconds < 1 {
		windowSeconds = 1
	}
	return &RateLimiter{
		windows:   make(map[string][]time.Time),
		maxEvents: maxEvents,
		window:    time.Duration(windowSeconds) * time.Second,
	}
}

// Admit records one event for the user and classifies it. On Flood the
// user's window is cleared so the next event starts fresh instead of
// immediately re-triggering.
func (rl *RateLimiter) Admit(userID string, now time.Time) Verdict {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	kept := rl.windows[userID][:0]
	for _, t := range rl.windows[userID] {
		if now.Sub(t) < rl.window {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)

	if len(kept) >= rl.maxEvents {
		delete(rl.windows, userID)
		return Flood
	}

	rl.windows[userID] = kept
	return Allowed
}

// WindowSize returns how many events the user currently has in the window.
func (rl *RateLimiter) WindowSize(userID string) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.windows[userID])
}
