package campaign

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.CampaignBackend against the campaign backend.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a campaign backend client.
func New(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

type planResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
}

type methodResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
}

type boostRequest struct {
	PlanID          int64 `json:"plan_id"`
	PaymentMethodID int64 `json:"payment_method_id"`
}

type errorBody struct {
	Message string `json:"message"`
}

// RecordBoost applies a boost to a campaign.
func (c *Client) RecordBoost(ctx context.Context, campaignID, planID, methodID int64) error {
	path := fmt.Sprintf("/campaigns/%d/boost", campaignID)
	return c.doJSON(ctx, http.MethodPost, path, boostRequest{
		PlanID:          planID,
		PaymentMethodID: methodID,
	}, &struct{}{})
}

// BoostPlans lists the published boost plans.
func (c *Client) BoostPlans(ctx context.Context) ([]domain.BoostPlan, error) {
	var resp []planResponse
	if err := c.doJSON(ctx, http.MethodGet, "/boost-plans", nil, &resp); err != nil {
		return nil, err
	}
	plans := make([]domain.BoostPlan, 0, len(resp))
	for _, p := range resp {
		plans = append(plans, domain.BoostPlan{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			DurationDays: p.DurationDays,
		})
	}
	return plans, nil
}

// PaymentMethods lists the published payment methods.
func (c *Client) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var resp []methodResponse
	if err := c.doJSON(ctx, http.MethodGet, "/payment-methods", nil, &resp); err != nil {
		return nil, err
	}
	methods := make([]domain.PaymentMethod, 0, len(resp))
	for _, m := range resp {
		methods = append(methods, domain.PaymentMethod{
			ID:       m.ID,
			Name:     m.Name,
			Number:   m.Number,
			Type:     m.Type,
			IsActive: m.IsActive,
		})
	}
	return methods, nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling campaign request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building campaign request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := ports.UpstreamTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("calling campaign backend: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading campaign response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Surface the backend's own message when it sends one.
		var eb errorBody
		if json.Unmarshal(data, &eb) == nil && eb.Message != "" {
			return fmt.Errorf("campaign backend: %s", eb.Message)
		}
		return fmt.Errorf("campaign backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding campaign response: %w", err)
	}
	return nil
}
