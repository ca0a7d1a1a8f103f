// internal/poller/runner.go
package poller

import (
	"context"
	"sync"
	"time"
)

// Run polls once immediately, then on every tick, emitting each PollResult
// on out. Ticks are uniform regardless of failures. No retries.
//
// Each cycle runs in its own goroutine so a slow request never delays the
// next tick. Overlapping cycles deliver in completion order; the last to
// arrive wins downstream. Run returns after ctx is done and every in-flight
// cycle has been abandoned.
func (p *Poller) Run(ctx context.Context, out chan<- PollResult) {
	var wg sync.WaitGroup
	defer wg.Wait()

	cycle := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := p.PollOnce(ctx)
			select {
			case out <- res:
			case <-ctx.Done():
			}
		}()
	}

	cycle()

	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cycle()
		}
	}
}

// Handle is a running poll loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start launches Run in the background and returns its stop handle.
func (p *Poller) Start(ctx context.Context, out chan<- PollResult) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(h.done)
		p.Run(ctx, out)
	}()

	return h
}

// Stop halts the timer, abandons in-flight requests, and waits for the
// loop to exit. Safe to call more than once.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
