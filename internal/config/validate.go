// internal/config/validate.go
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/tamzrod/slotboard/internal/logger"
	"github.com/tamzrod/slotboard/internal/status"
)

// MaxModbusSlots bounds the per-slot register area of the modbus surface.
const MaxModbusSlots = 100

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
// Zero values are accepted where Normalize supplies a default.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil")
	}
	d := cfg.Dashboard

	// ------------------------------------------------------------
	// SOURCE ENDPOINT
	// ------------------------------------------------------------

	if d.Endpoint == "" {
		return fmt.Errorf("dashboard.endpoint is required")
	}
	u, err := url.Parse(d.Endpoint)
	if err != nil {
		return fmt.Errorf("dashboard.endpoint %q: %w", d.Endpoint, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("dashboard.endpoint %q: must be an absolute http(s) URL", d.Endpoint)
	}

	// ------------------------------------------------------------
	// POLL CADENCE
	// ------------------------------------------------------------

	if d.Poll.IntervalMs < 0 {
		return fmt.Errorf("dashboard.poll.interval_ms must be >= 0, got %d", d.Poll.IntervalMs)
	}
	if d.Poll.TimeoutMs < 0 {
		return fmt.Errorf("dashboard.poll.timeout_ms must be >= 0, got %d", d.Poll.TimeoutMs)
	}

	interval := d.Poll.IntervalMs
	if interval == 0 {
		interval = int(status.DefaultPollInterval / time.Millisecond)
	}
	if d.Poll.TimeoutMs > interval {
		return fmt.Errorf(
			"dashboard.poll.timeout_ms %d exceeds interval %d",
			d.Poll.TimeoutMs,
			interval,
		)
	}

	// ------------------------------------------------------------
	// PRESENTATION
	// ------------------------------------------------------------

	if d.History.Window < 0 {
		return fmt.Errorf("dashboard.history.window must be >= 0, got %d", d.History.Window)
	}

	if d.Locale != "" {
		if _, ok := status.LabelsFor(d.Locale); !ok {
			return fmt.Errorf("dashboard.locale %q is not supported", d.Locale)
		}
	}

	if d.Timezone != "" {
		if _, err := time.LoadLocation(d.Timezone); err != nil {
			return fmt.Errorf("dashboard.timezone %q: %w", d.Timezone, err)
		}
	}

	if d.LogLevel != "" {
		if _, err := logger.ParseLevel(d.LogLevel); err != nil {
			return fmt.Errorf("dashboard.log_level: %w", err)
		}
	}

	// ------------------------------------------------------------
	// MODBUS SURFACE (OPT-IN)
	// ------------------------------------------------------------

	if m := d.Modbus; m != nil {
		if m.Endpoint == "" {
			return fmt.Errorf("dashboard.modbus.endpoint is required when modbus is set")
		}
		if m.TimeoutMs < 0 {
			return fmt.Errorf("dashboard.modbus.timeout_ms must be >= 0, got %d", m.TimeoutMs)
		}
		if m.MaxSlots < 0 || m.MaxSlots > MaxModbusSlots {
			return fmt.Errorf(
				"dashboard.modbus.max_slots must be within 1..%d, got %d",
				MaxModbusSlots,
				m.MaxSlots,
			)
		}

		slots := m.MaxSlots
		if slots == 0 {
			slots = DefaultModbusMaxSlots
		}
		end := int(m.BaseAddress) + status.RegisterSlotsStart + slots - 1
		if end > 0xFFFF {
			return fmt.Errorf(
				"dashboard.modbus: register block %d-%d runs past 65535",
				m.BaseAddress,
				end,
			)
		}
	}

	return nil
}
