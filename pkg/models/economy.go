package models

import "time"

// UserEconomy is one user's currency record as persisted in economy.json.
// LastDaily is null until the first daily claim.
type UserEconomy struct {
	Money     int        `json:"money"`
	LastDaily *time.Time `json:"last_daily"`
}

// EconomyDocument is the full economy ledger document, keyed by stringified
// user id.
type EconomyDocument map[string]*UserEconomy
