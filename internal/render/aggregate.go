// internal/render/aggregate.go
package render

import (
	"github.com/tamzrod/slotboard/internal/snapshot"
	"github.com/tamzrod/slotboard/internal/status"
)

// Aggregate counts connected slots by state in one pass.
// Disconnected slots contribute to no counter, whatever their state holds.
// A connected slot with an out-of-range state is counted as away so the
// per-state counters always reconcile with Total.
func Aggregate(slots []snapshot.Slot) Counters {
	var c Counters
	for _, s := range slots {
		if !s.Connected {
			continue
		}
		c.Total++

		switch s.State {
		case status.Available:
			c.Available++
		case status.Busy:
			c.Busy++
		default:
			c.Away++
		}
	}
	return c
}
