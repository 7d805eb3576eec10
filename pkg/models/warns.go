package models

import "time"

// Warn represents a single warning record
type Warn struct {
	By        string    `json:"by"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"ts"`
}

// WarningsDocument is the full warnings document as persisted in
// warnings.json: guild id → user id → warnings in chronological order.
type WarningsDocument map[string]map[string][]Warn
