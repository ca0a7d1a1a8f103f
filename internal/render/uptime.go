// internal/render/uptime.go
package render

import "fmt"

// SplitUptime floors milliseconds into whole hours and minutes.
func SplitUptime(ms int64) (hours, minutes int64) {
	if ms < 0 {
		ms = 0
	}
	s := ms / 1000
	return s / 3600, (s % 3600) / 60
}

// FormatUptime renders milliseconds as "Hh Mm". Seconds are dropped, never rounded.
func FormatUptime(ms int64) string {
	h, m := SplitUptime(ms)
	return fmt.Sprintf("%dh %dm", h, m)
}
