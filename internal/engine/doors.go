package engine

import (
	"math/rand"
	"sync"

	"github.com/PancyStudios/CovenBotGo/pkg/config"
)

// DoorsOutcome is what was behind the door the player just opened.
type DoorsOutcome int

const (
	OutcomeLoot DoorsOutcome = iota
	OutcomeSafe
	OutcomeMonster
)

// DoorsSession is one player's in-flight run. Sessions live in memory only:
// a restart forfeits them.
type DoorsSession struct {
	Room   int
	HP     int
	Hidden bool
	Reward int
}

// OpenResult describes everything that happened behind one door, including
// session termination and the amount settled into the economy ledger.
type OpenResult struct {
	Outcome   DoorsOutcome
	Session   DoorsSession
	Gained    int
	Died      bool
	Completed bool
	Settled   int
}

// DoorsManager runs the DOORS mini-game state machine for every player and
// settles rewards into the economy ledger when a run ends.
type DoorsManager struct {
	mu       sync.Mutex
	sessions map[string]*DoorsSession
	cfg      config.DoorsSettings
	economy  *EconomyLedger

	// Injectable randomness so tests can force outcomes.
	roll    func() float64
	randInt func(min, max int) int
}

// NewDoorsManager creates the manager. The outcome bands come from settings
// rather than constants; see config.DoorsSettings.
func NewDoorsManager(cfg config.DoorsSettings, economy *EconomyLedger) *DoorsManager {
	return &DoorsManager{
		sessions: make(map[string]*DoorsSession),
		cfg:      cfg,
		economy:  economy,
		roll:     rand.Float64,
		randInt:  randRange,
	}
}

// Start begins a fresh run for the user, overwriting any existing session.
func (m *DoorsManager) Start(userID string) DoorsSession {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &DoorsSession{Room: 1, HP: 3}
	m.sessions[userID] = s
	return *s
}

// Session returns a copy of the user's session, if any.
func (m *DoorsManager) Session(userID string) (DoorsSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s := m.sessions[userID]; s != nil {
		return *s, true
	}
	return DoorsSession{}, false
}

// Hide marks the player hidden until the next open. Idempotent. Returns
// false when there is no active session.
func (m *DoorsManager) Hide(userID string) (DoorsSession, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessions[userID]
	if s == nil {
		return DoorsSession{}, false
	}
	s.Hidden = true
	return *s, true
}

// Open resolves one door. Being hidden shaves the hide bonus off the monster
// band for this door only. A run ends on hp 0 (reward settled, bonus
// withheld) or on reaching the final room (reward plus completion bonus).
// Returns false when there is no active session.
func (m *DoorsManager) Open(userID string) (OpenResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.sessions[userID]
	if s == nil {
		return OpenResult{}, false
	}

	danger := m.cfg.MonsterChance
	if s.Hidden {
		danger -= m.cfg.HideBonus
		if danger < 0 {
			danger = 0
		}
		s.Hidden = false
	}

	res := OpenResult{}
	r := m.roll()

	switch {
	case r < danger:
		res.Outcome = OutcomeMonster
		s.HP--
		if s.HP <= 0 {
			res.Died = true
			res.Settled = s.Reward
			m.economy.Credit(userID, s.Reward)
			delete(m.sessions, userID)
		}
	case r < danger+m.cfg.SafeChance:
		res.Outcome = OutcomeSafe
		s.Room++
	default:
		res.Outcome = OutcomeLoot
		res.Gained = m.randInt(m.cfg.RewardMin, m.cfg.RewardMax)
		s.Reward += res.Gained
		s.Room++
	}

	if !res.Died && s.Room >= m.cfg.FinalRoom {
		res.Completed = true
		res.Settled = s.Reward + m.cfg.CompletionBonus
		m.economy.Credit(userID, res.Settled)
		delete(m.sessions, userID)
	}

	res.Session = *s
	return res, true
}

// Quit abandons the run with no settlement: a voluntary quit forfeits the
// accumulated reward, unlike death or completion. Returns false when there
// is no active session.
func (m *DoorsManager) Quit(userID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessions[userID] == nil {
		return false
	}
	delete(m.sessions, userID)
	return true
}

// ActiveSessions returns the number of in-flight runs.
func (m *DoorsManager) ActiveSessions() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}
