// internal/poller/httpapi/client.go
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/tamzrod/slotboard/internal/snapshot"
)

// maxBodyBytes bounds one response body.
const maxBodyBytes = 4 << 20

// Client implements poller.Client over plain HTTP GET.
// This adapter is transport-only: it fetches a body and hands it to the decoder.
type Client struct {
	endpoint string
	http     *http.Client
}

// Config is minimal transport config.
// Request deadlines come from the caller's context.
type Config struct {
	Endpoint   string
	HTTPClient *http.Client // nil => a dedicated client with default transport
}

// StatusError reports a non-2xx response.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("httpapi: GET %s: status %d", e.Endpoint, e.Code)
}

// New creates a client for one endpoint.
func New(cfg Config) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("httpapi: endpoint required")
	}
	if _, err := url.Parse(cfg.Endpoint); err != nil {
		return nil, fmt.Errorf("httpapi: endpoint: %w", err)
	}

	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{}
	}

	return &Client{
		endpoint: cfg.Endpoint,
		http:     hc,
	}, nil
}

// ---- poller.Client interface ----

// Fetch performs one GET and decodes the body.
func (c *Client) Fetch(ctx context.Context) (snapshot.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("httpapi: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("httpapi: GET %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return snapshot.Snapshot{}, &StatusError{Endpoint: c.endpoint, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("httpapi: read body: %w", err)
	}
	if len(body) > maxBodyBytes {
		return snapshot.Snapshot{}, fmt.Errorf("httpapi: body exceeds %d bytes", maxBodyBytes)
	}

	return snapshot.Decode(body)
}
