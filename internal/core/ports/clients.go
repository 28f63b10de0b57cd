package ports

import (
	"context"

	"easydonate-payments/internal/core/domain"

	"github.com/shopspring/decimal"
)

// GatewayInstruction is a debit or credit order sent to the mobile-money
// gateway. Amount travels as a decimal string on the wire.
type GatewayInstruction struct {
	Customer  string
	MSISDN    string
	Amount    decimal.Decimal
	Network   domain.Carrier
	Narration string
}

// GatewayReceipt is the gateway's answer to a payment instruction.
// A transport-level failure is returned as an error by the client; a
// gateway-reported rejection comes back as a receipt whose ErrorCode is not
// the configured success code, with the gateway's message verbatim.
type GatewayReceipt struct {
	ErrorCode         string
	Message           string
	TransactionID     string
	RefNo             string
	Amount            decimal.Decimal
	Network           string
	Fee               decimal.Decimal
	TransactionStatus string
}

// GatewayStatus is one answer from the payment status-check endpoint.
type GatewayStatus struct {
	Status    string
	ErrorCode string
}

// MomoGateway is the outbound client for the external mobile-money gateway.
type MomoGateway interface {
	// CreditWallet pays money out to a subscriber (withdrawal payout).
	CreditWallet(ctx context.Context, in GatewayInstruction) (*GatewayReceipt, error)
	// DebitWallet charges a subscriber (boost payment collection).
	DebitWallet(ctx context.Context, in GatewayInstruction) (*GatewayReceipt, error)
	// CheckStatus queries the state of a previously submitted instruction.
	CheckStatus(ctx context.Context, refNo string) (*GatewayStatus, error)
	// NameEnquiry resolves the account holder name for an MSISDN.
	NameEnquiry(ctx context.Context, msisdn string, network domain.Carrier) (string, error)
}

// LedgerWithdrawal records a completed payout against the user's wallet.
type LedgerWithdrawal struct {
	Reference string
	Amount    decimal.Decimal
	Fee       decimal.Decimal
	MSISDN    string
	Network   domain.Carrier
	Narration string
}

// LedgerFee is a best-effort fee-ledger entry.
type LedgerFee struct {
	Reference  string
	Amount     decimal.Decimal
	FeePercent decimal.Decimal
}

// WalletLedger is the outbound client for the internal wallet-ledger backend.
// It remains the authority on balances; this service only caches reads.
type WalletLedger interface {
	Balance(ctx context.Context) (*domain.WalletBalance, error)
	Stats(ctx context.Context) (*domain.WalletStats, error)
	// RecordWithdrawal posts the withdrawal against the balance and returns
	// the new balance as reported by the ledger.
	RecordWithdrawal(ctx context.Context, w LedgerWithdrawal) (decimal.Decimal, error)
	RecordFee(ctx context.Context, f LedgerFee) error
}

// CampaignBackend is the outbound client for the campaign/boost backend.
type CampaignBackend interface {
	// RecordBoost applies a boost to a campaign. A transport failure or a
	// backend-reported business failure both surface as errors carrying the
	// backend message.
	RecordBoost(ctx context.Context, campaignID, planID, methodID int64) error
	BoostPlans(ctx context.Context) ([]domain.BoostPlan, error)
	PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error)
}
