// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/slotboard/internal/snapshot"
)

// PollResult is the outcome of one poll cycle.
// Exactly one of Snapshot or Err is meaningful.
type PollResult struct {
	Source   string
	At       time.Time
	Duration time.Duration

	Snapshot snapshot.Snapshot
	Err      error // non-nil means the poll cycle failed
}
