package ledger

import (
	"context"
	"fmt"
	"net/http"
)

// HealthCheck implements ports.HealthChecker for the wallet-ledger backend.
type HealthCheck struct {
	baseURL    string
	httpClient HTTPClient
}

// NewHealthCheck creates a ledger health checker.
func NewHealthCheck(baseURL string, httpClient HTTPClient) *HealthCheck {
	return &HealthCheck{baseURL: baseURL, httpClient: httpClient}
}

// Ping checks ledger reachability. Any answer below 500 counts as healthy.
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
		return fmt.Errorf("ledger health returned %d", resp.StatusCode)
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "wallet-ledger"
}
