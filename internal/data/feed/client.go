// Package feed acquires telemetry from the Zen Machine backend: an HTTP
// client for the snapshot endpoint, a polling controller that reconciles
// the observable state with it, and a connectivity prober.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/zenmachine/zentop/internal/core/model"
)

const (
	// EnvBackendURL overrides the backend base URL.
	EnvBackendURL = "ZEN_TELEMETRY_URL"
	// DefaultBackendURL is the localhost fallback used when neither flag
	// nor environment configure a backend.
	DefaultBackendURL = "http://localhost:8000"

	telemetryPath = "/telemetry"
	healthPath    = "/health"
)

// ResolveBaseURL picks the backend base URL: explicit flag value first,
// then the environment, then the localhost default.
func ResolveBaseURL(flagValue string) string {
	if flagValue != "" {
		return strings.TrimRight(flagValue, "/")
	}
	if env := os.Getenv(EnvBackendURL); env != "" {
		return strings.TrimRight(env, "/")
	}
	return DefaultBackendURL
}

// Client fetches telemetry snapshots over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client against the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// BaseURL returns the resolved backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchSnapshot requests the latest snapshot with caching disabled.
// Transport failures and non-2xx statuses both come back as errors; the
// caller converts them into state, never re-throws.
func (c *Client) FetchSnapshot(ctx context.Context) (*model.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+telemetryPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build telemetry request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telemetry fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("telemetry endpoint returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read telemetry response: %w", err)
	}

	var snap model.Snapshot
	if err := sonic.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse telemetry response: %w", err)
	}
	return &snap, nil
}

// Healthy probes the backend's health endpoint. Any 2xx counts as online;
// everything else, including transport errors, counts as offline.
func (c *Client) Healthy(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+healthPath, nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
