// internal/snapshot/snapshot.go
package snapshot

import "github.com/tamzrod/slotboard/internal/status"

// Snapshot is the decoded result of one poll.
// It is fully replaced each cycle; nothing in it survives to the next.
type Snapshot struct {
	// Slots is index-significant: index i is slot i+1 on the board.
	Slots []Slot `json:"slots"`

	// History is chronological ascending, as delivered.
	History []HistoryEntry `json:"history"`

	// Uptime is backend process uptime in milliseconds.
	Uptime int64 `json:"uptime"`
}

// Slot is one workstation as reported by the backend.
type Slot struct {
	Connected bool         `json:"connecte"`
	State     status.State `json:"etat"` // meaningful only when Connected
	FirstName string       `json:"prenom"`
	LastName  string       `json:"nom"`
	NodeID    string       `json:"nodeId"`
	EcoMode   bool         `json:"ecoMode"`

	// LastSeen is seconds since last contact. 0 means unknown.
	LastSeen int64 `json:"lastSeen"`
}

// HistoryEntry is one state transition.
type HistoryEntry struct {
	Slot      int          `json:"slot"` // zero-based
	NewState  status.State `json:"newState"`
	Timestamp int64        `json:"timestamp"` // epoch milliseconds
}
