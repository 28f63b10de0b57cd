package momo

import (
	"context"
	"fmt"
	"net/http"
)

// HealthCheck implements ports.HealthChecker for the mobile-money gateway.
type HealthCheck struct {
	baseURL    string
	httpClient HTTPClient
}

// NewHealthCheck creates a gateway health checker.
func NewHealthCheck(baseURL string, httpClient HTTPClient) *HealthCheck {
	return &HealthCheck{baseURL: baseURL, httpClient: httpClient}
}

// Ping checks gateway reachability. Any answer below 500 counts as healthy;
// the gateway's health endpoint does not require authentication.
func (h *HealthCheck) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := h.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("gateway health returned %d", resp.StatusCode)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "momo-gateway"
}
