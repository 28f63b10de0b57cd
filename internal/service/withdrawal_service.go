package service

import (
	"context"
	"fmt"
	"time"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const withdrawalInflightTTL = 2 * time.Minute

// WithdrawalServiceImpl implements ports.WithdrawalService.
type WithdrawalServiceImpl struct {
	gateway     ports.MomoGateway
	ledger      ports.WalletLedger
	inflight    ports.InflightStore
	minAmount   decimal.Decimal
	defaultNarr string
	successCode string
	log         zerolog.Logger
}

// NewWithdrawalService creates a new WithdrawalServiceImpl.
func NewWithdrawalService(
	gateway ports.MomoGateway,
	ledger ports.WalletLedger,
	inflight ports.InflightStore,
	minAmount decimal.Decimal,
	defaultNarration string,
	successCode string,
	log zerolog.Logger,
) *WithdrawalServiceImpl {
	return &WithdrawalServiceImpl{
		gateway:     gateway,
		ledger:      ledger,
		inflight:    inflight,
		minAmount:   minAmount,
		defaultNarr: defaultNarration,
		successCode: successCode,
		log:         log,
	}
}

// RequestWithdrawal runs the payout orchestration: local validation, balance
// pre-check, fee calculation, gateway credit, ledger recording. A ledger
// failure after the gateway accepted the payout is reported as a
// reconciliation warning on the outcome, never as a hard failure.
func (s *WithdrawalServiceImpl) RequestWithdrawal(ctx context.Context, req ports.WithdrawalRequest) (*domain.WithdrawalOutcome, error) {
	// Local pre-flight checks. Nothing leaves the process until these pass.
	if req.Amount.Sign() <= 0 {
		return nil, apperror.Validation("amount must be greater than zero")
	}
	if req.Amount.LessThan(s.minAmount) {
		return nil, apperror.ErrBelowMinimum(s.minAmount.String())
	}
	if !domain.ValidMSISDN(req.MSISDN) {
		return nil, apperror.ErrInvalidNetwork()
	}
	carrier := domain.DetectCarrier(req.MSISDN)
	if !carrier.IsKnown() {
		return nil, apperror.ErrInvalidNetwork()
	}

	// One withdrawal at a time per user.
	key := "withdraw:" + req.UserID
	acquired, err := s.inflight.Acquire(ctx, key, withdrawalInflightTTL)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("inflight acquire: %w", err))
	}
	if !acquired {
		return nil, apperror.ErrDuplicateSubmission()
	}
	defer func() {
		if rerr := s.inflight.Release(context.WithoutCancel(ctx), key); rerr != nil {
			s.log.Warn().Err(rerr).Str("key", key).Msg("inflight release failed")
		}
	}()

	// Balance pre-check compares the gross amount.
	balance, err := s.ledger.Balance(ctx)
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("wallet ledger", err)
	}
	if req.Amount.GreaterThan(balance.Balance) {
		return nil, apperror.ErrInsufficientBalance()
	}

	breakdown := domain.CalculateFee(req.Amount)

	customer := req.Customer
	if customer == "" {
		// Best effort: a failed enquiry never blocks the payout.
		name, nerr := s.gateway.NameEnquiry(ctx, req.MSISDN, carrier)
		if nerr != nil {
			s.log.Warn().Err(nerr).Str("msisdn", req.MSISDN).Msg("name enquiry failed, proceeding without customer name")
		} else {
			customer = name
		}
	}

	narration := req.Narration
	if narration == "" {
		narration = s.defaultNarr
	}

	reference := domain.NewWithdrawalReference(time.Now().UTC())

	// The subscriber receives the net amount; fees stay in the wallet ledger.
	receipt, err := s.gateway.CreditWallet(ctx, ports.GatewayInstruction{
		Customer:  customer,
		MSISDN:    req.MSISDN,
		Amount:    breakdown.Net,
		Network:   carrier,
		Narration: narration,
	})
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("momo gateway", err)
	}
	if receipt.ErrorCode != s.successCode {
		s.log.Info().
			Str("reference", reference).
			Str("gateway_code", receipt.ErrorCode).
			Str("gateway_message", receipt.Message).
			Msg("gateway rejected withdrawal")
		return nil, apperror.ErrGatewayRejected(receipt.ErrorCode, receipt.Message)
	}

	outcome := &domain.WithdrawalOutcome{
		Reference:            reference,
		GatewayTransactionID: receipt.TransactionID,
		Amount:               breakdown.Gross,
		Fees:                 breakdown.Fee,
		Currency:             balance.Currency,
		Carrier:              carrier,
	}

	// Money has moved. From here on, failures are reconciliation problems,
	// never payout failures.
	newBalance, err := s.ledger.RecordWithdrawal(ctx, ports.LedgerWithdrawal{
		Reference: reference,
		Amount:    breakdown.Gross,
		Fee:       breakdown.Fee,
		MSISDN:    req.MSISDN,
		Network:   carrier,
		Narration: narration,
	})
	if err != nil {
		s.log.Error().
			Err(err).
			Str("reference", reference).
			Str("gateway_txn_id", receipt.TransactionID).
			Msg("ledger record failed after gateway accepted payout, manual reconciliation needed")
		outcome.ReconciliationWarning = true
		outcome.NewBalance = balance.Balance
		return outcome, nil
	}
	outcome.NewBalance = newBalance

	if ferr := s.ledger.RecordFee(ctx, ports.LedgerFee{
		Reference:  reference,
		Amount:     breakdown.Fee,
		FeePercent: breakdown.TotalPercent,
	}); ferr != nil {
		s.log.Warn().Err(ferr).Str("reference", reference).Msg("fee record failed")
	}

	s.log.Info().
		Str("reference", reference).
		Str("gateway_txn_id", receipt.TransactionID).
		Str("amount", breakdown.Gross.String()).
		Str("fee", breakdown.Fee.String()).
		Str("network", string(carrier)).
		Msg("withdrawal completed")

	return outcome, nil
}
