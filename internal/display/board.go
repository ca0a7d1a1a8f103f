// internal/display/board.go
package display

import (
	"sync"

	"github.com/tamzrod/slotboard/internal/render"
)

// Board is an in-memory display surface.
// Slots, counters and uptime are overwritten on every commit.
// History is replaced only when the view carries one: an empty snapshot
// history leaves the last known good list in place.
type Board struct {
	mu      sync.RWMutex
	regions Regions
}

func NewBoard() *Board {
	return &Board{}
}

// Commit applies one view atomically with respect to readers.
func (b *Board) Commit(v render.View) error {
	cards := append([]render.Card(nil), v.Cards...)

	var hist []render.HistoryLine
	if v.HasHistory() {
		hist = append([]render.HistoryLine(nil), v.History...)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.regions.Cards = cards
	b.regions.Counters = v.Counters
	b.regions.Uptime = v.Uptime
	if hist != nil {
		b.regions.History = hist
	}
	b.regions.Commits++

	return nil
}

// Regions returns a copy of the current display state.
func (b *Board) Regions() Regions {
	b.mu.RLock()
	defer b.mu.RUnlock()

	r := b.regions
	r.Cards = append([]render.Card(nil), b.regions.Cards...)
	r.History = append([]render.HistoryLine(nil), b.regions.History...)
	return r
}
