// Package engine implements the engagement state engine: the sliding-window
// rate limiter, the XP/level and currency ledgers, the moderation warning
// ledger, and the DOORS mini-game. Every ledger persists through the durable
// store after each mutation; Discord side effects (roles, announcements)
// stay in the event and command layers.
package engine

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/PancyStudios/CovenBotGo/pkg/config"
	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/PancyStudios/CovenBotGo/pkg/storage"
)

// MessageGrants is what one qualifying message earned. When Fired is false
// the cooldown gate held and nothing was granted.
type MessageGrants struct {
	Fired   bool
	XP      XPGain
	Money   int
	Balance int
}

// Engine owns the ledgers and the shared cooldown gate. XP and currency
// share one lastGain clock per user: both fire together or neither does.
type Engine struct {
	Progression *ProgressionLedger
	Economy     *EconomyLedger
	Warnings    *WarningLedger
	Doors       *DoorsManager
	Limiter     *RateLimiter

	settings *config.Settings

	gateMu   sync.Mutex
	lastGain map[string]time.Time
	cooldown time.Duration

	randInt func(min, max int) int
}

var (
	eng     *Engine
	engOnce sync.Once
)

// Init builds the global engine: loads every ledger document and wires the
// mini-game to the economy. Called once at startup.
func Init(store *storage.Store, s *config.Settings) *Engine {
	engOnce.Do(func() {
		eng = New(store, s)
	})
	return eng
}

// Get returns the global engine instance.
func Get() *Engine {
	return eng
}

// New creates an engine without touching the global instance. Used by Init
// and by tests.
func New(store *storage.Store, s *config.Settings) *Engine {
	economy := NewEconomyLedger(store, s.Economy.DailyAmount)

	e := &Engine{
		Progression: NewProgressionLedger(store),
		Economy:     economy,
		Warnings:    NewWarningLedger(store),
		Doors:       NewDoorsManager(s.Doors, economy),
		Limiter:     NewRateLimiter(s.SpamMaxMsgs, s.SpamWindowSeconds),
		settings:    s,
		lastGain:    make(map[string]time.Time),
		cooldown:    time.Duration(s.XPCooldownSeconds) * time.Second,
		randInt:     randRange,
	}

	logger.System(fmt.Sprintf("Engagement engine ready (%d users tracked, %d balances)",
		e.Progression.Size(), e.Economy.Size()), "Engine")
	return e
}

// Settings returns the engine's guild settings.
func (e *Engine) Settings() *config.Settings {
	return e.settings
}

// GrantMessageRewards runs the shared cooldown gate for one qualifying
// message. When the gate opens it stamps lastGain, grants a random XP amount
// and a random currency amount, and reports both. When the gate holds,
// nothing changes.
func (e *Engine) GrantMessageRewards(userID string, now time.Time) MessageGrants {
	e.gateMu.Lock()
	last, seen := e.lastGain[userID]
	if seen && now.Sub(last) < e.cooldown {
		e.gateMu.Unlock()
		return MessageGrants{}
	}
	e.lastGain[userID] = now
	e.gateMu.Unlock()

	s := e.settings
	xp := e.Progression.Grant(userID, e.randInt(s.XPPerMessageMin, s.XPPerMessageMax))
	money := e.randInt(s.Economy.MoneyPerMessageMin, s.Economy.MoneyPerMessageMax)
	balance := e.Economy.Credit(userID, money)

	return MessageGrants{Fired: true, XP: xp, Money: money, Balance: balance}
}

// randRange draws uniformly from [min, max].
func randRange(min, max int) int {
	if max < min {
		max = min
	}
	return min + rand.Intn(max-min+1)
}
