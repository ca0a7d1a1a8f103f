// internal/poller/builder.go
package poller

import (
	cfg "github.com/tamzrod/slotboard/internal/config"
	"github.com/tamzrod/slotboard/internal/poller/httpapi"
)

// Build constructs a Poller wired to the HTTP snapshot endpoint.
// Assumes config has already passed Validate and Normalize.
func Build(d cfg.DashboardConfig) (*Poller, error) {
	client, err := httpapi.New(httpapi.Config{
		Endpoint: d.Endpoint,
	})
	if err != nil {
		return nil, err
	}

	return New(
		Config{
			Source:   d.Endpoint,
			Interval: d.Interval(),
			Timeout:  d.Timeout(),
		},
		client,
	)
}
