package domain

import "time"

// Snapshot is a named, persisted edge list.
type Snapshot struct {
	Name        string    `json:"name"`
	Fingerprint string    `json:"fingerprint"`
	Edges       []Edge    `json:"edges"`
	SavedAt     time.Time `json:"saved_at"`
}
