// internal/render/history.go
package render

import (
	"time"

	"github.com/tamzrod/slotboard/internal/snapshot"
	"github.com/tamzrod/slotboard/internal/status"
)

const historyTimeLayout = "15:04"

// Window returns the newest min(n, len(h)) entries, most recent first.
// The input is never modified.
func Window(h []snapshot.HistoryEntry, n int) []snapshot.HistoryEntry {
	if n <= 0 || len(h) == 0 {
		return nil
	}
	if n > len(h) {
		n = len(h)
	}

	tail := h[len(h)-n:]
	out := make([]snapshot.HistoryEntry, n)
	for i, e := range tail {
		out[n-1-i] = e
	}
	return out
}

// FormatHistory windows and formats events.
// It returns nil for an empty input so callers can leave the region alone.
func FormatHistory(h []snapshot.HistoryEntry, n int, l status.Labels, loc *time.Location) []HistoryLine {
	win := Window(h, n)
	if len(win) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	lines := make([]HistoryLine, 0, len(win))
	for _, e := range win {
		lines = append(lines, HistoryLine{
			Slot:  l.HistorySlot(e.Slot),
			Label: l.Transition(e.NewState),
			Time:  time.UnixMilli(e.Timestamp).In(loc).Format(historyTimeLayout),
		})
	}
	return lines
}
