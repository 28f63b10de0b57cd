package service

import (
	"context"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// WalletServiceImpl implements ports.WalletService. Reads pass through to
// the wallet ledger, which stays authoritative on balances; quotes are
// computed locally.
type WalletServiceImpl struct {
	ledger  ports.WalletLedger
	gateway ports.MomoGateway
	log     zerolog.Logger
}

// NewWalletService creates a new WalletServiceImpl.
func NewWalletService(ledger ports.WalletLedger, gateway ports.MomoGateway, log zerolog.Logger) *WalletServiceImpl {
	return &WalletServiceImpl{
		ledger:  ledger,
		gateway: gateway,
		log:     log,
	}
}

// Balance returns the current wallet balance.
func (s *WalletServiceImpl) Balance(ctx context.Context) (*domain.WalletBalance, error) {
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("wallet ledger", err)
	}
	return balance, nil
}

// Stats returns aggregate wallet statistics.
func (s *WalletServiceImpl) Stats(ctx context.Context) (*domain.WalletStats, error) {
	stats, err := s.ledger.Stats(ctx)
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("wallet ledger", err)
	}
	return stats, nil
}

// Quote computes the fee breakdown for a prospective withdrawal without
// touching any backend.
func (s *WalletServiceImpl) Quote(amount decimal.Decimal) domain.FeeBreakdown {
	return domain.CalculateFee(amount)
}

// FeeRanges returns the published fee schedule.
func (s *WalletServiceImpl) FeeRanges() []domain.FeeRange {
	return domain.FeeRanges()
}

// NameEnquiry resolves the account holder name for a mobile-money number.
func (s *WalletServiceImpl) NameEnquiry(ctx context.Context, msisdn string) (string, domain.Carrier, error) {
	if !domain.ValidMSISDN(msisdn) {
		return "", domain.CarrierUnknown, apperror.ErrInvalidNetwork()
	}
	carrier := domain.DetectCarrier(msisdn)
	if !carrier.IsKnown() {
		return "", domain.CarrierUnknown, apperror.ErrInvalidNetwork()
	}

	name, err := s.gateway.NameEnquiry(ctx, msisdn, carrier)
	if err != nil {
		return "", carrier, apperror.ErrUpstreamUnavailable("momo gateway", err)
	}
	return name, carrier, nil
}
