package engine

import (
	"fmt"
	"sort"
	"sync"

	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/PancyStudios/CovenBotGo/pkg/models"
	"github.com/PancyStudios/CovenBotGo/pkg/storage"
)

const progressionFile = "progression"

// Threshold returns the total XP required to hold the given level.
// Level 1 needs 100 XP, level 2 needs 200, and so on. The comparison is
// always total XP against Threshold(level+1); deltas never compound.
func Threshold(level int) int {
	if level < 1 {
		level = 1
	}
	return 100 * level
}

// XPGain describes the result of one progression grant.
type XPGain struct {
	Amount    int
	XP        int
	Level     int
	LeveledUp bool
}

// RankedUser is one leaderboard entry.
type RankedUser struct {
	UserID string
	XP     int
	Level  int
}

// ProgressionLedger tracks per-user XP and level. Users are created lazily
// on their first grant and never deleted; XP only moves up.
type ProgressionLedger struct {
	mu    sync.Mutex
	users models.ProgressionDocument
	store *storage.Store
}

// NewProgressionLedger loads the progression document from the store.
func NewProgressionLedger(store *storage.Store) *ProgressionLedger {
	users := models.ProgressionDocument{}
	store.Load(progressionFile, &users)

	return &ProgressionLedger{
		users: users,
		store: store,
	}
}

// Grant adds XP to the user and applies at most one level-up, even when the
// gain jumps past two thresholds at once. The excess carries over and the
// next grant levels again. Persists the full document.
func (l *ProgressionLedger) Grant(userID string, amount int) XPGain {
	l.mu.Lock()
	defer l.mu.Unlock()

	u := l.users[userID]
	if u == nil {
		u = &models.UserProgression{}
		l.users[userID] = u
	}

	if amount > 0 {
		u.XP += amount
	}

	leveled := false
	if u.XP >= Threshold(u.Level+1) {
		u.Level++
		leveled = true
	}

	l.persist()

	return XPGain{Amount: amount, XP: u.XP, Level: u.Level, LeveledUp: leveled}
}

// Get returns a copy of the user's record. The zero record stands in for
// users that never earned XP.
func (l *ProgressionLedger) Get(userID string) models.UserProgression {
	l.mu.Lock()
	defer l.mu.Unlock()

	if u := l.users[userID]; u != nil {
		return *u
	}
	return models.UserProgression{}
}

// Top returns the n highest-ranked users, ordered by level then XP.
func (l *ProgressionLedger) Top(n int) []RankedUser {
	l.mu.Lock()
	defer l.mu.Unlock()

	ranked := make([]RankedUser, 0, len(l.users))
	for id, u := range l.users {
		ranked = append(ranked, RankedUser{UserID: id, XP: u.XP, Level: u.Level})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Level != ranked[j].Level {
			return ranked[i].Level > ranked[j].Level
		}
		if ranked[i].XP != ranked[j].XP {
			return ranked[i].XP > ranked[j].XP
		}
		return ranked[i].UserID < ranked[j].UserID
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Size returns the number of tracked users.
func (l *ProgressionLedger) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.users)
}

func (l *ProgressionLedger) persist() {
	if err := l.store.Save(progressionFile, l.users); err != nil {
		logger.Error(fmt.Sprintf("Failed to persist progression ledger: %v", err), "Engine")
	}
}
