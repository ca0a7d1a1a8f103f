// internal/render/view.go
package render

import "github.com/tamzrod/slotboard/internal/status"

// Counters is the per-cycle aggregate of connected slots.
type Counters struct {
	Available int `json:"available"`
	Busy      int `json:"busy"`
	Away      int `json:"away"`
	Total     int `json:"total"`
}

// Card is the display record of one slot.
type Card struct {
	Connected bool         `json:"connected"`
	State     status.State `json:"state"` // as reported; meaningful only when Connected

	Title     string `json:"title"`      // "POSTE 1"
	Label     string `json:"label"`      // status badge text
	Class     string `json:"class"`      // status badge class
	CardClass string `json:"card_class"` // "offline" when disconnected
	Name      string `json:"name"`
	Node      string `json:"node"`
	Eco       string `json:"eco"`       // empty unless eco mode
	LastSeen  string `json:"last_seen"` // empty placeholder when suppressed
}

// HistoryLine is one formatted event, most recent first.
type HistoryLine struct {
	Slot  string `json:"slot"`  // "Poste 3"
	Label string `json:"label"` // transition label
	Time  string `json:"time"`  // local HH:MM
}

// Text is the combined "Poste N: LABEL" line.
func (h HistoryLine) Text() string {
	return h.Slot + ": " + h.Label
}

// View is everything one render produces.
// History is nil when the snapshot carried no events; surfaces must then
// keep whatever history they last displayed.
type View struct {
	Cards    []Card        `json:"cards"`
	Counters Counters      `json:"counters"`
	Uptime   string        `json:"uptime"`
	UptimeMs int64         `json:"uptime_ms"`
	History  []HistoryLine `json:"history,omitempty"`
}

// HasHistory reports whether this view replaces the history region.
func (v View) HasHistory() bool {
	return v.History != nil
}
