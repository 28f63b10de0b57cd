package ports

import (
	"context"
	"time"

	"easydonate-payments/internal/core/domain"

	"github.com/shopspring/decimal"
)

// WithdrawalRequest holds validated input for a mobile-money withdrawal.
type WithdrawalRequest struct {
	UserID    string
	Customer  string
	MSISDN    string
	Amount    decimal.Decimal
	Narration string
}

// WithdrawalService runs the withdrawal orchestration: balance pre-check,
// fee calculation, gateway payout and ledger reconciliation.
type WithdrawalService interface {
	RequestWithdrawal(ctx context.Context, req WithdrawalRequest) (*domain.WithdrawalOutcome, error)
}

// BoostRequest holds validated input for boosting a campaign.
type BoostRequest struct {
	UserID          string
	CampaignID      int64
	PlanID          int64
	PaymentMethodID int64
	// Mobile-money fields, required when the selected method is mobile_money.
	Customer  string
	MSISDN    string
	Narration string
}

// BoostService runs the boost-payment state machine: debit, bounded status
// polling, boost recording with the guest fallback on ambiguous outcomes.
type BoostService interface {
	BoostCampaign(ctx context.Context, req BoostRequest) (*domain.BoostOutcome, error)
	Plans(ctx context.Context) ([]domain.BoostPlan, error)
	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}

// WalletService exposes wallet reads and fee quotations to the dashboard.
type WalletService interface {
	Balance(ctx context.Context) (*domain.WalletBalance, error)
	Stats(ctx context.Context) (*domain.WalletStats, error)
	Quote(amount decimal.Decimal) domain.FeeBreakdown
	FeeRanges() []domain.FeeRange
	NameEnquiry(ctx context.Context, msisdn string) (string, domain.Carrier, error)
}

// SessionClaims is the resolved identity of a dashboard session.
type SessionClaims struct {
	SessionID     string
	UserID        string
	UpstreamToken string
}

// SessionService issues and resolves dashboard sessions. The upstream bearer
// token is held server-side in the session store so orchestrations can call
// the backends on the user's behalf; tests substitute a fake store.
type SessionService interface {
	// Open stores the upstream token and returns a signed session token.
	Open(ctx context.Context, userID, upstreamToken string) (string, time.Time, error)
	// Resolve validates a signed session token and loads the stored claims.
	Resolve(ctx context.Context, signedToken string) (*SessionClaims, error)
	// Close discards the session and its stored token.
	Close(ctx context.Context, sessionID string) error
}
