package ledger

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, srv.Client(), zerolog.Nop())
}

func TestBalance(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/wallet/balance", r.URL.Path)
		assert.Equal(t, "Bearer upstream-tok", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(map[string]any{"balance": "2500.50", "currency": "GHS"})
	}))

	ctx := ports.ContextWithUpstreamToken(context.Background(), "upstream-tok")
	balance, err := client.Balance(ctx)
	require.NoError(t, err)
	assert.True(t, balance.Balance.Equal(decimal.RequireFromString("2500.50")))
	assert.Equal(t, "GHS", balance.Currency)
}

func TestStats(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{
			"available_balance": "1000",
			"total_withdrawn":   "4000",
			"total_withdrawals": 12,
			"currency":          "GHS",
			"status":            "active",
		})
	}))

	stats, err := client.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, stats.TotalWithdrawals)
	assert.True(t, stats.TotalWithdrawn.Equal(decimal.NewFromInt(4000)))
	assert.Equal(t, "active", stats.Status)
}

func TestRecordWithdrawal(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wallet/withdrawals", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "WDR-1722500000000-abcd1234", body["reference"])
		assert.Equal(t, "1000", body["amount"])
		assert.Equal(t, "75", body["fee"])
		assert.Equal(t, "MTN", body["network"])

		json.NewEncoder(w).Encode(map[string]any{"balance": "4000"})
	}))

	newBalance, err := client.RecordWithdrawal(context.Background(), ports.LedgerWithdrawal{
		Reference: "WDR-1722500000000-abcd1234",
		Amount:    decimal.NewFromInt(1000),
		Fee:       decimal.NewFromInt(75),
		MSISDN:    "0244000000",
		Network:   domain.CarrierMTN,
		Narration: "Credit MTN Customer",
	})
	require.NoError(t, err)
	assert.True(t, newBalance.Equal(decimal.NewFromInt(4000)))
}

func TestRecordFee_EmptyResponseBody(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wallet/fees", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	err := client.RecordFee(context.Background(), ports.LedgerFee{
		Reference:  "WDR-1",
		Amount:     decimal.NewFromInt(75),
		FeePercent: decimal.RequireFromString("7.5"),
	})
	assert.NoError(t, err)
}

func TestBalance_ServerError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "ledger offline", http.StatusServiceUnavailable)
	}))

	_, err := client.Balance(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
