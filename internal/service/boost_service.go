package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"easydonate-payments/internal/core/domain"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"

	"github.com/rs/zerolog"
)

const boostInflightTTL = 5 * time.Minute

// confirmedStatuses are the gateway status values that confirm a debit.
var confirmedStatuses = map[string]bool{
	"success":   true,
	"completed": true,
	"approved":  true,
}

// BoostServiceImpl implements ports.BoostService.
type BoostServiceImpl struct {
	gateway      ports.MomoGateway
	campaign     ports.CampaignBackend
	inflight     ports.InflightStore
	successCode  string
	sentinelCode string
	pollMax      int
	pollDelay    time.Duration
	log          zerolog.Logger
}

// NewBoostService creates a new BoostServiceImpl.
func NewBoostService(
	gateway ports.MomoGateway,
	campaign ports.CampaignBackend,
	inflight ports.InflightStore,
	successCode string,
	sentinelCode string,
	pollMax int,
	pollDelay time.Duration,
	log zerolog.Logger,
) *BoostServiceImpl {
	return &BoostServiceImpl{
		gateway:      gateway,
		campaign:     campaign,
		inflight:     inflight,
		successCode:  successCode,
		sentinelCode: sentinelCode,
		pollMax:      pollMax,
		pollDelay:    pollDelay,
		log:          log,
	}
}

// Plans lists the boost plans published by the campaign backend.
func (s *BoostServiceImpl) Plans(ctx context.Context) ([]domain.BoostPlan, error) {
	plans, err := s.campaign.BoostPlans(ctx)
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("campaign backend", err)
	}
	return plans, nil
}

// PaymentMethods lists the payment methods published by the campaign backend.
func (s *BoostServiceImpl) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	methods, err := s.campaign.PaymentMethods(ctx)
	if err != nil {
		return nil, apperror.ErrUpstreamUnavailable("campaign backend", err)
	}
	return methods, nil
}

// BoostCampaign drives one boost-payment attempt through the state machine:
// debit, bounded status polling, boost recording. Ambiguous payment outcomes
// route through the guest fallback, which records the boost anyway and tells
// the user to contact support if money moved unexpectedly. The gateway
// sentinel code (user cancelled / insufficient funds) is the one rejection
// that guarantees no charge, so it alone suppresses the fallback.
func (s *BoostServiceImpl) BoostCampaign(ctx context.Context, req ports.BoostRequest) (*domain.BoostOutcome, error) {
	if req.CampaignID <= 0 || req.PlanID <= 0 || req.PaymentMethodID <= 0 {
		return nil, apperror.Validation("campaign, plan and payment method are required")
	}

	plan, method, err := s.resolveSelection(ctx, req.PlanID, req.PaymentMethodID)
	if err != nil {
		return nil, err
	}

	var carrier domain.Carrier
	if method.Type == domain.PaymentMethodMobileMoney {
		if !domain.ValidMSISDN(req.MSISDN) {
			return nil, apperror.ErrInvalidNetwork()
		}
		carrier = domain.DetectCarrier(req.MSISDN)
		if !carrier.IsKnown() {
			return nil, apperror.ErrInvalidNetwork()
		}
	}

	key := "boost:" + req.UserID
	acquired, err := s.inflight.Acquire(ctx, key, boostInflightTTL)
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

	bt := domain.NewBoostTransaction(req.CampaignID, req.PlanID, req.PaymentMethodID)
	if err := bt.Transition(domain.BoostStateProcessing); err != nil {
		return nil, apperror.InternalError(err)
	}

	narration := req.Narration
	if narration == "" {
		narration = fmt.Sprintf("Boost campaign for %d days", plan.DurationDays)
	}

	receipt, err := s.gateway.DebitWallet(ctx, ports.GatewayInstruction{
		Customer:  req.Customer,
		MSISDN:    req.MSISDN,
		Amount:    plan.Price,
		Network:   carrier,
		Narration: narration,
	})
	switch {
	case err != nil:
		// Transport-level failure: the debit may or may not have gone through.
		s.log.Warn().Err(err).Int64("campaign_id", req.CampaignID).Msg("debit call failed, entering guest fallback")
		return s.guestFallback(ctx, bt, "")
	case receipt.ErrorCode == s.sentinelCode:
		// The one outcome that guarantees no charge.
		_ = bt.Transition(domain.BoostStateFailed)
		return nil, apperror.ErrPaymentCancelled()
	case receipt.ErrorCode != s.successCode:
		s.log.Warn().
			Str("gateway_code", receipt.ErrorCode).
			Str("gateway_message", receipt.Message).
			Msg("debit rejected with non-sentinel code, entering guest fallback")
		return s.guestFallback(ctx, bt, receipt.TransactionID)
	}

	bt.GatewayRef = receipt.RefNo
	if err := bt.Transition(domain.BoostStateChecking); err != nil {
		return nil, apperror.InternalError(err)
	}

	confirmed, cancelled, err := s.pollStatus(ctx, bt)
	if err != nil {
		return nil, err
	}
	if cancelled {
		_ = bt.Transition(domain.BoostStateFailed)
		return nil, apperror.ErrPaymentCancelled()
	}
	if !confirmed {
		s.log.Warn().
			Str("ref_no", bt.GatewayRef).
			Int("attempts", bt.PollAttempts).
			Msg("status polling exhausted, entering guest fallback")
		return s.guestFallback(ctx, bt, receipt.TransactionID)
	}

	if err := bt.Transition(domain.BoostStateBoosting); err != nil {
		return nil, apperror.InternalError(err)
	}

	if err := s.campaign.RecordBoost(ctx, req.CampaignID, req.PlanID, req.PaymentMethodID); err != nil {
		_ = bt.Transition(domain.BoostStateFailed)
		s.log.Error().
			Err(err).
			Int64("campaign_id", req.CampaignID).
			Str("gateway_txn_id", receipt.TransactionID).
			Msg("boost recording failed after confirmed payment")
		return nil, apperror.ErrRecordingFailed(err)
	}

	_ = bt.Transition(domain.BoostStateSuccess)
	s.log.Info().
		Int64("campaign_id", req.CampaignID).
		Int64("plan_id", req.PlanID).
		Str("gateway_txn_id", receipt.TransactionID).
		Msg("campaign boosted")

	return &domain.BoostOutcome{
		State:                bt.State,
		Result:               domain.BoostResultConfirmed,
		GatewayTransactionID: receipt.TransactionID,
		Message:              "Campaign boosted successfully",
	}, nil
}

// resolveSelection loads the published plans and methods and validates the
// user's choice against them, so price and duration come from the backend
// rather than the request.
func (s *BoostServiceImpl) resolveSelection(ctx context.Context, planID, methodID int64) (*domain.BoostPlan, *domain.PaymentMethod, error) {
	plans, err := s.campaign.BoostPlans(ctx)
	if err != nil {
		return nil, nil, apperror.ErrUpstreamUnavailable("campaign backend", err)
	}
	var plan *domain.BoostPlan
	for i := range plans {
		if plans[i].ID == planID {
			plan = &plans[i]
			break
		}
	}
	if plan == nil {
		return nil, nil, apperror.Validation("unknown boost plan")
	}

	methods, err := s.campaign.PaymentMethods(ctx)
	if err != nil {
		return nil, nil, apperror.ErrUpstreamUnavailable("campaign backend", err)
	}
	var method *domain.PaymentMethod
	for i := range methods {
		if methods[i].ID == methodID {
			method = &methods[i]
			break
		}
	}
	if method == nil || !method.IsActive {
		return nil, nil, apperror.Validation("unknown or inactive payment method")
	}
	return plan, method, nil
}

// pollStatus runs the bounded status-check loop. Returns confirmed=true when
// the gateway reports a paid status, cancelled=true when it reports the
// sentinel, and (false, false) when the attempts are exhausted.
func (s *BoostServiceImpl) pollStatus(ctx context.Context, bt *domain.BoostTransaction) (confirmed, cancelled bool, err error) {
	for attempt := 0; attempt < s.pollMax; attempt++ {
		bt.PollAttempts++

		status, serr := s.gateway.CheckStatus(ctx, bt.GatewayRef)
		if serr != nil {
			s.log.Warn().Err(serr).Int("attempt", bt.PollAttempts).Msg("status check failed")
		} else {
			if confirmedStatuses[strings.ToLower(status.Status)] {
				return true, false, nil
			}
			if status.ErrorCode == s.sentinelCode {
				return false, true, nil
			}
		}

		if attempt == s.pollMax-1 {
			break
		}
		select {
		case <-ctx.Done():
			return false, false, apperror.ErrGatewayAmbiguous(ctx.Err())
		case <-time.After(s.pollDelay):
		}
	}
	return false, false, nil
}

// guestFallback records the boost despite the unconfirmed payment. This is a
// deliberate availability-over-consistency trade: the boost goes live, and
// the caveat tells the user what to do if the charge did not land.
func (s *BoostServiceImpl) guestFallback(ctx context.Context, bt *domain.BoostTransaction, txnID string) (*domain.BoostOutcome, error) {
	if err := bt.Transition(domain.BoostStateGuestFallback); err != nil {
		return nil, apperror.InternalError(err)
	}

	if err := s.campaign.RecordBoost(ctx, bt.CampaignID, bt.PlanID, bt.PaymentMethodID); err != nil {
		_ = bt.Transition(domain.BoostStateFailed)
		s.log.Error().
			Err(err).
			Int64("campaign_id", bt.CampaignID).
			Msg("guest fallback recording failed")
		return nil, apperror.ErrRecordingFailed(err)
	}

	_ = bt.Transition(domain.BoostStateSuccess)
	return &domain.BoostOutcome{
		State:                bt.State,
		Result:               domain.BoostResultUnconfirmed,
		GatewayTransactionID: txnID,
		Message:              "Campaign boosted",
		Caveat:               "Payment could not be confirmed. If you were charged and the boost does not appear, please contact support.",
	}, nil
}
