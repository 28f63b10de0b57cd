package dto

import (
	"easydonate-payments/internal/core/domain"

	"github.com/shopspring/decimal"
)

// OpenSessionRequest is the request body for opening a dashboard session.
type OpenSessionRequest struct {
	UserID        string `json:"user_id" binding:"required,safe_id,max=64"`
	UpstreamToken string `json:"upstream_token" binding:"required"`
}

// OpenSessionResponse is the response body for a new session.
type OpenSessionResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// WithdrawalRequest is the request body for requesting a payout.
type WithdrawalRequest struct {
	Customer  string          `json:"customer,omitempty" binding:"max=100"`
	MSISDN    string          `json:"msisdn" binding:"required,msisdn"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Narration string          `json:"narration,omitempty" binding:"max=140"`
}

// WithdrawalResponse is the response body for a completed payout.
type WithdrawalResponse struct {
	Reference             string          `json:"reference"`
	TransactionID         string          `json:"transaction_id"`
	Amount                decimal.Decimal `json:"amount"`
	Fees                  decimal.Decimal `json:"fees"`
	NewBalance            decimal.Decimal `json:"new_balance"`
	Currency              string          `json:"currency"`
	Network               string          `json:"network"`
	ReconciliationWarning bool            `json:"reconciliation_warning,omitempty"`
}

// QuoteResponse is the response for a fee quotation.
type QuoteResponse struct {
	Amount         decimal.Decimal `json:"amount"`
	BaseFeePercent decimal.Decimal `json:"base_fee_percent"`
	ServicePercent decimal.Decimal `json:"service_percent"`
	TotalPercent   decimal.Decimal `json:"total_percent"`
	Fee            decimal.Decimal `json:"fee"`
	Net            decimal.Decimal `json:"net"`
}

// FeeRangeResponse is one row of the published fee schedule.
type FeeRangeResponse struct {
	Range       string `json:"range"`
	Rate        string `json:"rate"`
	Description string `json:"description"`
}

// BalanceResponse is the response for a balance query.
type BalanceResponse struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// StatsResponse is the response for wallet statistics.
type StatsResponse struct {
	AvailableBalance decimal.Decimal `json:"available_balance"`
	TotalWithdrawn   decimal.Decimal `json:"total_withdrawn"`
	TotalWithdrawals int             `json:"total_withdrawals"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
	UpdatedAt        string          `json:"updated_at"`
}

// NameEnquiryRequest is the request body for resolving an account name.
type NameEnquiryRequest struct {
	MSISDN string `json:"msisdn" binding:"required,msisdn"`
}

// NameEnquiryResponse is the response for a resolved account name.
type NameEnquiryResponse struct {
	Name    string `json:"name"`
	Network string `json:"network"`
}

// BoostRequest is the request body for boosting a campaign.
type BoostRequest struct {
	PlanID          int64  `json:"plan_id" binding:"required,gt=0"`
	PaymentMethodID int64  `json:"payment_method_id" binding:"required,gt=0"`
	Customer        string `json:"customer,omitempty" binding:"max=100"`
	MSISDN          string `json:"msisdn,omitempty" binding:"omitempty,msisdn"`
	Narration       string `json:"narration,omitempty" binding:"max=140"`
}

// BoostResponse is the response body for a terminated boost attempt.
type BoostResponse struct {
	State         string `json:"state"`
	Result        string `json:"result"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message"`
	Caveat        string `json:"caveat,omitempty"`
}

// NewBoostResponse maps a domain outcome onto the wire shape.
func NewBoostResponse(o *domain.BoostOutcome) BoostResponse {
	return BoostResponse{
		State:         string(o.State),
		Result:        string(o.Result),
		TransactionID: o.GatewayTransactionID,
		Message:       o.Message,
		Caveat:        o.Caveat,
	}
}

// PlanResponse is one published boost plan.
type PlanResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
}

// PaymentMethodResponse is one published payment method.
type PaymentMethodResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
}
