package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/PancyStudios/CovenBotGo/pkg/models"
	"github.com/PancyStudios/CovenBotGo/pkg/storage"
)

const economyFile = "economy"

// dailyWindow is the minimum gap between two daily claims.
const dailyWindow = 24 * time.Hour

// ClaimResult reports the outcome of a daily claim. When Granted is false,
// Remaining says how long until the next claim is allowed.
type ClaimResult struct {
	Granted   bool
	Amount    int
	Remaining time.Duration
	Balance   int
}

// EconomyLedger tracks per-user currency balances. No operation ever takes a
// balance below zero.
type EconomyLedger struct {
	mu          sync.Mutex
	users       models.EconomyDocument
	store       *storage.Store
	dailyAmount int
}

// NewEconomyLedger loads the economy document from the store.
func NewEconomyLedger(store *storage.Store, dailyAmount int) *EconomyLedger {
	users := models.EconomyDocument{}
	store.Load(economyFile, &users)

	return &EconomyLedger{
		users:       users,
		store:       store,
		dailyAmount: dailyAmount,
	}
}

// Credit adds a non-negative amount to the user's balance and persists.
// Returns the new balance.
func (l *EconomyLedger) Credit(userID string, amount int) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	u := l.ensure(userID)
	if amount > 0 {
		u.Money += amount
		l.persist()
	}
	return u.Money
}

// ClaimDaily grants the flat daily amount at most once per 24h. A denied
// claim reports the exact remaining wait.
func (l *EconomyLedger) ClaimDaily(userID string, now time.Time) ClaimResult {
	l.mu.Lock()
	defer l.mu.Unlock()

	u := l.ensure(userID)

	if u.LastDaily != nil {
		elapsed := now.Sub(*u.LastDaily)
		if elapsed < dailyWindow {
			return ClaimResult{
				Granted:   false,
				Remaining: dailyWindow - elapsed,
				Balance:   u.Money,
			}
		}
	}

	u.Money += l.dailyAmount
	stamp := now.UTC()
	u.LastDaily = &stamp
	l.persist()

	return ClaimResult{Granted: true, Amount: l.dailyAmount, Balance: u.Money}
}

// Balance returns the user's current balance (zero for unknown users).
func (l *EconomyLedger) Balance(userID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if u := l.users[userID]; u != nil {
		return u.Money
	}
	return 0
}

// Size returns the number of tracked users.
func (l *EconomyLedger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.users)
}

// ensure returns the user's record, creating it lazily. Caller holds the lock.
func (l *EconomyLedger) ensure(userID string) *models.UserEconomy {
	u := l.users[userID]
	if u == nil {
		u = &models.UserEconomy{}
		l.users[userID] = u
	}
	return u
}

func (l *EconomyLedger) persist() {
	if err := l.store.Save(economyFile, l.users); err != nil {
		logger.Error(fmt.Sprintf("Failed to persist economy ledger: %v", err), "Engine")
	}
}
