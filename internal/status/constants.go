// internal/status/constants.go
package status

import "time"

// ---- CADENCE / WINDOW DEFAULTS ----

// DefaultPollInterval is the fixed refresh cadence.
const DefaultPollInterval = 2000 * time.Millisecond

// DefaultHistoryWindow is the number of most recent events shown.
const DefaultHistoryWindow = 8

// ---- SLOT STATES ----

// State is the closed set of slot states reported by the backend.
type State int

const (
	Available State = 0
	Busy      State = 1
	Away      State = 2

	// Disconnected only appears in history entries. It sits outside the
	// table range and must be checked before any label lookup.
	Disconnected State = -1
)

// ---- CSS CLASSES ----

const (
	ClassAvailable = "badge-dispo"
	ClassBusy      = "badge-busy"
	ClassAway      = "badge-away"
	ClassUnknown   = "badge-unknown"
	ClassOffline   = "offline-badge"

	// CardClassOffline marks the whole card of a disconnected slot.
	CardClassOffline = "offline"
)

// Class returns the badge class for a connected slot in state s.
func Class(s State) string {
	switch s {
	case Available:
		return ClassAvailable
	case Busy:
		return ClassBusy
	case Away:
		return ClassAway
	default:
		return ClassUnknown
	}
}

// ---- REGISTER BLOCK LAYOUT ----
// Offsets relative to the configured base address.
// These values define the register protocol and MUST NOT be configurable.

const RegisterAvailable = 0
const RegisterBusy = 1
const RegisterAway = 2
const RegisterTotal = 3
const RegisterUptimeHours = 4
const RegisterUptimeMinutes = 5

// Registers 6–7 are reserved for future use.
const RegisterReservedStart = 6
const RegisterReservedEnd = 7

// RegisterSlotsStart is the first per-slot code register.
const RegisterSlotsStart = 8
