// internal/display/types.go
package display

import "github.com/tamzrod/slotboard/internal/render"

// Surface commits a rendered view to one output.
// It is the only place render output leaves the process.
type Surface interface {
	Commit(v render.View) error
}

// Region identifiers, matching the page the board was built for.
const (
	RegionSlots     = "slots"
	RegionAvailable = "cd"
	RegionBusy      = "cb"
	RegionAway      = "ca"
	RegionTotal     = "ct"
	RegionUptime    = "up"
	RegionHistory   = "hist"
)

// Regions is a copy of what a Board currently displays.
type Regions struct {
	Cards    []render.Card        `json:"slots"`
	Counters render.Counters      `json:"counters"`
	Uptime   string               `json:"up"`
	History  []render.HistoryLine `json:"hist"`

	// Commits counts successful commits; zero means nothing rendered yet.
	Commits uint64 `json:"commits"`
}
