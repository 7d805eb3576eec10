package models

// UserProgression is one user's XP record as persisted in progression.json.
type UserProgression struct {
	XP    int `json:"xp"`
	Level int `json:"level"`
}

// ProgressionDocument is the full progression ledger document, keyed by
// stringified user id.
type ProgressionDocument map[string]*UserProgression
