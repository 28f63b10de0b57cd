package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.WalletLedger against the wallet-ledger backend.
// Every call authenticates with the session's upstream bearer token.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	log        zerolog.Logger
}

// New creates a ledger client.
func New(baseURL string, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		log:        log,
	}
}

type balanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

type statsResponse struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn"`
	TotalWithdrawals int             `json:"total_withdrawals"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

type withdrawalRequest struct {
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount"`
	Fee       decimal.Decimal `json:"fee"`
	MSISDN    string          `json:"msisdn"`
	Network   string          `json:"network"`
	Narration string          `json:"narration"`
}

type withdrawalResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type feeRequest struct {
	Reference  string          `json:"reference"`
	Amount     decimal.Decimal `json:"amount"`
	FeePercent decimal.Decimal `json:"fee_percent"`
}

// Balance returns the current wallet balance.
func (c *Client) Balance(ctx context.Context) (*domain.WalletBalance, error) {
	var resp balanceResponse
	if err := c.doJSON(ctx, http.MethodGet, "/wallet/balance", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.WalletBalance{Balance: resp.Balance, Currency: resp.Currency}, nil
}

// Stats returns aggregate wallet statistics.
func (c *Client) Stats(ctx context.Context) (*domain.WalletStats, error) {
	var resp statsResponse
	if err := c.doJSON(ctx, http.MethodGet, "/wallet/stats", nil, &resp); err != nil {
		return nil, err
	}
	return &domain.WalletStats{
		AvailableBalance: resp.AvailableBalance,
		TotalWithdrawn:   resp.TotalWithdrawn,
		TotalWithdrawals: resp.TotalWithdrawals,
		Currency:         resp.Currency,
		Status:           resp.Status,
		UpdatedAt:        resp.UpdatedAt,
	}, nil
}

// RecordWithdrawal posts the withdrawal and returns the new balance. The
// reference is the idempotency key: replays return the already-applied state.
func (c *Client) RecordWithdrawal(ctx context.Context, w ports.LedgerWithdrawal) (decimal.Decimal, error) {
	var resp withdrawalResponse
	err := c.doJSON(ctx, http.MethodPost, "/wallet/withdrawals", withdrawalRequest{
		Reference: w.Reference,
		Amount:    w.Amount,
		Fee:       w.Fee,
		MSISDN:    w.MSISDN,
		Network:   string(w.Network),
		Narration: w.Narration,
	}, &resp)
	if err != nil {
		return decimal.Zero, err
	}
	return resp.Balance, nil
}

// RecordFee posts a fee-ledger entry.
func (c *Client) RecordFee(ctx context.Context, f ports.LedgerFee) error {
	return c.doJSON(ctx, http.MethodPost, "/wallet/fees", feeRequest{
		Reference:  f.Reference,
		Amount:     f.Amount,
		FeePercent: f.FeePercent,
	}, &struct{}{})
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling ledger request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building ledger request: %w", err)
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
		return fmt.Errorf("calling ledger: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("reading ledger response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("ledger returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding ledger response: %w", err)
	}
	return nil
}
