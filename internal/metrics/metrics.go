package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tamzrod/slotboard/internal/render"
)

const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// PollsTotal counts poll cycles by outcome
	PollsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "slotboard_polls_total",
			Help: "Total number of poll cycles by result",
		},
		[]string{"result"},
	)

	// PollDuration tracks request round-trip time in seconds
	PollDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "slotboard_poll_duration_seconds",
			Help:    "Duration of poll requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1, 2},
		},
	)

	// Slots tracks connected slots by status from the last good snapshot
	Slots = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "slotboard_slots",
			Help: "Connected slots by status in the last rendered snapshot",
		},
		[]string{"status"},
	)

	// BackendUptime is the backend uptime reported by the last good snapshot
	BackendUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slotboard_backend_uptime_seconds",
			Help: "Backend process uptime reported by the last rendered snapshot",
		},
	)

	// LastSuccess is the unix time of the last successful poll
	LastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "slotboard_last_success_timestamp_seconds",
			Help: "Unix time of the last successful poll",
		},
	)
)

// RecordPoll records the outcome and duration of one poll cycle
func RecordPoll(result string, d time.Duration) {
	PollsTotal.WithLabelValues(result).Inc()
	PollDuration.Observe(d.Seconds())
}

// RecordRender publishes the aggregate of a rendered view
func RecordRender(v render.View, at time.Time) {
	Slots.WithLabelValues("available").Set(float64(v.Counters.Available))
	Slots.WithLabelValues("busy").Set(float64(v.Counters.Busy))
	Slots.WithLabelValues("away").Set(float64(v.Counters.Away))
	Slots.WithLabelValues("total").Set(float64(v.Counters.Total))
	BackendUptime.Set(float64(v.UptimeMs) / 1000)
	LastSuccess.Set(float64(at.Unix()))
}
