// internal/dashboard/dashboard.go
package dashboard

import (
	"context"

	"github.com/tamzrod/slotboard/internal/display"
	"github.com/tamzrod/slotboard/internal/logger"
	"github.com/tamzrod/slotboard/internal/metrics"
	"github.com/tamzrod/slotboard/internal/poller"
	"github.com/tamzrod/slotboard/internal/render"
)

// Dashboard turns poll results into committed views.
// It owns no display state; the surface does.
type Dashboard struct {
	renderer *render.Renderer
	surface  display.Surface
	log      *logger.Logger
}

func New(r *render.Renderer, s display.Surface, log *logger.Logger) *Dashboard {
	return &Dashboard{
		renderer: r,
		surface:  s,
		log:      log,
	}
}

// Handle processes one poll result.
// A failed poll is logged once and leaves every region untouched.
// It reports whether a view was committed.
func (d *Dashboard) Handle(res poller.PollResult) bool {
	if res.Err != nil {
		metrics.RecordPoll(metrics.ResultFailure, res.Duration)
		d.log.Errorf("poll failed (source=%s): %v", res.Source, res.Err)
		return false
	}
	metrics.RecordPoll(metrics.ResultSuccess, res.Duration)

	view := d.renderer.Render(res.Snapshot)

	if err := d.surface.Commit(view); err != nil {
		d.log.Errorf("display commit failed (source=%s): %v", res.Source, err)
	} else {
		metrics.RecordRender(view, res.At)
	}

	d.log.Debugf(
		"rendered (source=%s) slots=%d connected=%d history=%d in %s",
		res.Source,
		len(view.Cards),
		view.Counters.Total,
		len(view.History),
		res.Duration,
	)
	return true
}

// Consume handles results until ctx is done.
func (d *Dashboard) Consume(ctx context.Context, in <-chan poller.PollResult) {
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-in:
			d.Handle(res)
		}
	}
}
