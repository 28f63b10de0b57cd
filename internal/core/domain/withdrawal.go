package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// localMSISDNRe matches a 10-digit local mobile number with a recognized
// leading digit (02x-05x ranges).
var localMSISDNRe = regexp.MustCompile(`^0[2-5][0-9]{8}$`)

// ValidMSISDN reports whether the number is in acceptable local format.
func ValidMSISDN(msisdn string) bool {
	return localMSISDNRe.MatchString(msisdn)
}

// WalletBalance is the read-only cached copy of the remote wallet balance.
// The ledger backend stays authoritative; this value is only good for a
// client-side pre-check.
type WalletBalance struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// WalletStats is the ledger's aggregated wallet view for the dashboard.
type WalletStats struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn"`
	TotalWithdrawals int             `json:"total_withdrawals"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// WithdrawalOutcome is the terminal result of a successful (or
// reconciliation-pending) withdrawal run.
type WithdrawalOutcome struct {
	Reference            string          `json:"reference"`
	GatewayTransactionID string          `json:"transaction_id"`
	Amount               decimal.Decimal `json:"amount"`
	Fees                 decimal.Decimal `json:"fees"`
	NewBalance           decimal.Decimal `json:"new_balance"`
	Currency             string          `json:"currency"`
	Carrier              Carrier         `json:"network"`
	// ReconciliationWarning is set when the gateway accepted the payout but
	// the ledger update failed: money moved externally and the recorded
	// balance may lag behind. NewBalance then still holds the stale value.
	ReconciliationWarning bool `json:"reconciliation_warning,omitempty"`
}

// NewWithdrawalReference builds the idempotent per-attempt reference the
// ledger uses to deduplicate retried submissions: timestamp plus a random
// suffix, so a re-submitted request is distinguishable gateway-side.
func NewWithdrawalReference(now time.Time) string {
	return fmt.Sprintf("WDR-%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}
