// internal/render/render.go
package render

import (
	"time"

	"github.com/tamzrod/slotboard/internal/snapshot"
	"github.com/tamzrod/slotboard/internal/status"
)

// Options fixes the presentation of every render.
type Options struct {
	Labels   status.Labels
	Window   int
	Location *time.Location // nil => time.Local
}

// Renderer is a pure function of a snapshot.
// It holds no state between cycles.
type Renderer struct {
	opts Options
}

// New creates a renderer. A zero Window falls back to the default size.
func New(opts Options) *Renderer {
	if opts.Window <= 0 {
		opts.Window = status.DefaultHistoryWindow
	}
	if opts.Labels == (status.Labels{}) {
		opts.Labels = status.English()
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	return &Renderer{opts: opts}
}

// Render converts one snapshot into a complete view.
func (r *Renderer) Render(s snapshot.Snapshot) View {
	cards := make([]Card, 0, len(s.Slots))
	for i, slot := range s.Slots {
		cards = append(cards, FormatCard(i, slot, r.opts.Labels))
	}

	return View{
		Cards:    cards,
		Counters: Aggregate(s.Slots),
		Uptime:   FormatUptime(s.Uptime),
		UptimeMs: s.Uptime,
		History:  FormatHistory(s.History, r.opts.Window, r.opts.Labels, r.opts.Location),
	}
}
