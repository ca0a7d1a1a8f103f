// internal/poller/poller_test.go
package poller

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tamzrod/slotboard/internal/snapshot"
)

type fakeClient struct {
	fail  bool
	delay time.Duration
	calls atomic.Int32
}

func (f *fakeClient) Fetch(ctx context.Context) (snapshot.Snapshot, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return snapshot.Snapshot{}, ctx.Err()
		}
	}
	if f.fail {
		return snapshot.Snapshot{}, errors.New("fetch failed")
	}
	return snapshot.Snapshot{
		Slots:  []snapshot.Slot{{Connected: true}},
		Uptime: 1000,
	}, nil
}

func testConfig() Config {
	return Config{
		Source:   "http://backend/api/data",
		Interval: 20 * time.Millisecond,
	}
}

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{Interval: time.Second}, &fakeClient{}); err == nil {
		t.Fatalf("expected source error")
	}
	if _, err := New(Config{Source: "s"}, &fakeClient{}); err == nil {
		t.Fatalf("expected interval error")
	}
	if _, err := New(Config{Source: "s", Interval: time.Second}, nil); err == nil {
		t.Fatalf("expected client error")
	}
}

func TestNew_TimeoutDefaultsToInterval(t *testing.T) {
	p, err := New(Config{Source: "s", Interval: time.Second, Timeout: 5 * time.Second}, &fakeClient{})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}
	if p.cfg.Timeout != time.Second {
		t.Fatalf("timeout not bounded by interval: %v", p.cfg.Timeout)
	}
}

func TestPollOnce_Success(t *testing.T) {
	p, err := New(testConfig(), &fakeClient{})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if res.Err != nil {
		t.Fatalf("PollOnce err=%v", res.Err)
	}
	if len(res.Snapshot.Slots) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(res.Snapshot.Slots))
	}
	if res.Source != "http://backend/api/data" {
		t.Fatalf("source: got %q", res.Source)
	}
}

func TestPollOnce_Failure(t *testing.T) {
	p, err := New(testConfig(), &fakeClient{fail: true})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if res.Err == nil {
		t.Fatalf("expected error, got nil")
	}
	if len(res.Snapshot.Slots) != 0 {
		t.Fatalf("failed cycle carried a snapshot")
	}
}

func TestPollOnce_TimeoutApplied(t *testing.T) {
	cfg := testConfig()
	cfg.Timeout = 10 * time.Millisecond

	p, err := New(cfg, &fakeClient{delay: time.Second})
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	res := p.PollOnce(context.Background())
	if !errors.Is(res.Err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", res.Err)
	}
}

func TestRun_ImmediateThenTicks(t *testing.T) {
	fc := &fakeClient{}
	cfg := testConfig()
	cfg.Interval = 200 * time.Millisecond
	p, _ := New(cfg, fc)

	out := make(chan PollResult, 16)
	h := p.Start(context.Background(), out)

	// first result arrives without waiting a full interval
	select {
	case <-out:
	case <-time.After(150 * time.Millisecond):
		t.Fatalf("no immediate poll")
	}

	deadline := time.After(time.Second)
	for got := 1; got < 3; {
		select {
		case <-out:
			got++
		case <-deadline:
			t.Fatalf("expected ticks to keep firing")
		}
	}

	h.Stop()
}

func TestRun_FailuresDoNotStopTicks(t *testing.T) {
	fc := &fakeClient{fail: true}
	p, _ := New(testConfig(), fc)

	out := make(chan PollResult, 16)
	h := p.Start(context.Background(), out)
	defer h.Stop()

	deadline := time.After(time.Second)
	for failures := 0; failures < 3; {
		select {
		case res := <-out:
			if res.Err == nil {
				t.Fatalf("expected failure result")
			}
			failures++
		case <-deadline:
			t.Fatalf("failures stopped the schedule")
		}
	}
}

func TestHandle_StopEndsLoop(t *testing.T) {
	fc := &fakeClient{delay: time.Hour}
	p, _ := New(testConfig(), fc)

	out := make(chan PollResult)
	h := p.Start(context.Background(), out)

	time.Sleep(30 * time.Millisecond)
	h.Stop()
	h.Stop() // idempotent

	select {
	case <-h.Done():
	default:
		t.Fatalf("loop still running after Stop")
	}

	calls := fc.calls.Load()
	time.Sleep(50 * time.Millisecond)
	if fc.calls.Load() != calls {
		t.Fatalf("timer still firing after Stop")
	}
}
