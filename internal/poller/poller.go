// internal/poller/poller.go
package poller

import (
	"context"
	"errors"
	"time"

	"github.com/tamzrod/slotboard/internal/snapshot"
)

// Client abstracts the one request the poller needs.
// Transport errors and decode errors are both returned as err.
type Client interface {
	Fetch(ctx context.Context) (snapshot.Snapshot, error)
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Source   string
	Interval time.Duration
	Timeout  time.Duration // per request; 0 => Interval
}

// Poller is a dumb, clock-driven reader.
type Poller struct {
	cfg    Config
	client Client
}

// New creates a poller with immutable config.
func New(cfg Config, client Client) (*Poller, error) {
	if cfg.Source == "" {
		return nil, errors.New("poller: source required")
	}
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if cfg.Timeout < 0 {
		return nil, errors.New("poller: timeout must be >= 0")
	}
	if cfg.Timeout == 0 || cfg.Timeout > cfg.Interval {
		cfg.Timeout = cfg.Interval
	}
	if client == nil {
		return nil, errors.New("poller: client required")
	}
	return &Poller{cfg: cfg, client: client}, nil
}

// Interval returns the fixed tick period.
func (p *Poller) Interval() time.Duration {
	return p.cfg.Interval
}

// PollOnce performs exactly one poll cycle.
// All-or-nothing: a failed fetch carries no snapshot.
func (p *Poller) PollOnce(ctx context.Context) PollResult {
	res := PollResult{
		Source: p.cfg.Source,
		At:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	snap, err := p.client.Fetch(ctx)
	res.Duration = time.Since(res.At)
	if err != nil {
		res.Err = err
		return res
	}

	// Commit only on success
	res.Snapshot = snap
	return res
}
