// internal/config/normalize.go
package config

import (
	"time"

	"github.com/tamzrod/slotboard/internal/status"
)

const (
	DefaultLocale          = "en"
	DefaultLogLevel        = "info"
	DefaultModbusTimeoutMs = 1000
	DefaultModbusMaxSlots  = 32
)

// Normalize applies post-validation normalization.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	d := &cfg.Dashboard

	if d.Poll.IntervalMs == 0 {
		d.Poll.IntervalMs = int(status.DefaultPollInterval / time.Millisecond)
	}
	// Request timeout is bounded by the interval.
	if d.Poll.TimeoutMs == 0 {
		d.Poll.TimeoutMs = d.Poll.IntervalMs
	}

	if d.History.Window == 0 {
		d.History.Window = status.DefaultHistoryWindow
	}
	if d.Locale == "" {
		d.Locale = DefaultLocale
	}
	if d.LogLevel == "" {
		d.LogLevel = DefaultLogLevel
	}

	if m := d.Modbus; m != nil {
		if m.TimeoutMs == 0 {
			m.TimeoutMs = DefaultModbusTimeoutMs
		}
		if m.MaxSlots == 0 {
			m.MaxSlots = DefaultModbusMaxSlots
		}
	}
}

// Interval returns the normalized poll interval.
func (d DashboardConfig) Interval() time.Duration {
	return time.Duration(d.Poll.IntervalMs) * time.Millisecond
}

// Timeout returns the normalized per-request timeout.
func (d DashboardConfig) Timeout() time.Duration {
	return time.Duration(d.Poll.TimeoutMs) * time.Millisecond
}

// Location resolves the configured timezone. Empty means client local time.
func (d DashboardConfig) Location() *time.Location {
	if d.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(d.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
