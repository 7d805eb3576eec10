package engine

import (
	"fmt"
	"sync"
	"time"

	"github.com/PancyStudios/CovenBotGo/pkg/logger"
	"github.com/PancyStudios/CovenBotGo/pkg/models"
	"github.com/PancyStudios/CovenBotGo/pkg/storage"
)

const warningsFile = "warnings"

// WarningLedger is the per-guild, per-user moderation record. Warnings are
// append-only: the only way an entry disappears is an explicit Clear. Who may
// warn or clear is decided by the command layer, not here.
type WarningLedger struct {
	mu    sync.Mutex
	warns models.WarningsDocument
	store *storage.Store
}

// NewWarningLedger loads the warnings document from the store.
func NewWarningLedger(store *storage.Store) *WarningLedger {
	warns := models.WarningsDocument{}
	store.Load(warningsFile, &warns)

	return &WarningLedger{
		warns: warns,
		store: store,
	}
}

// Warn appends a warning for the subject and persists. It always succeeds;
// there is no de-duplication and no cap on count.
func (l *WarningLedger) Warn(guildID, subjectID, issuerID, reason string, now time.Time) models.Warn {
	l.mu.Lock()
	defer l.mu.Unlock()

	guild := l.warns[guildID]
	if guild == nil {
		guild = make(map[string][]models.Warn)
		l.warns[guildID] = guild
	}

	w := models.Warn{
		By:        issuerID,
		Reason:    reason,
		Timestamp: now.UTC(),
	}
	guild[subjectID] = append(guild[subjectID], w)

	l.persist()
	return w
}

// List returns the subject's warnings in chronological order, most recent
// last. The returned slice is a copy.
func (l *WarningLedger) List(guildID, subjectID string) []models.Warn {
	l.mu.Lock()
	defer l.mu.Unlock()

	recs := l.warns[guildID][subjectID]
	out := make([]models.Warn, len(recs))
	copy(out, recs)
	return out
}

// Clear empties the subject's warning list and persists. Irreversible.
func (l *WarningLedger) Clear(guildID, subjectID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	guild := l.warns[guildID]
	if guild == nil {
		return
	}
	guild[subjectID] = nil

	l.persist()
}

// Count returns how many warnings the subject currently has.
func (l *WarningLedger) Count(guildID, subjectID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.warns[guildID][subjectID])
}

func (l *WarningLedger) persist() {
	if err := l.store.Save(warningsFile, l.warns); err != nil {
		logger.Error(fmt.Sprintf("Failed to persist warning ledger: %v", err), "Engine")
	}
}
