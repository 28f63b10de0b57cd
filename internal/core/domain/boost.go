package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// BoostState is the lifecycle state of a single boost-payment attempt.
type BoostState string

const (
	BoostStateForm          BoostState = "FORM"
	BoostStateProcessing    BoostState = "PROCESSING"
	BoostStateChecking      BoostState = "CHECKING"
	BoostStateBoosting      BoostState = "BOOSTING"
	BoostStateGuestFallback BoostState = "GUEST_FALLBACK"
	BoostStateSuccess       BoostState = "SUCCESS"
	BoostStateFailed        BoostState = "FAILED"
)

// boostTransitions lists the legal state machine edges.
var boostTransitions = map[BoostState][]BoostState{
	BoostStateForm:          {BoostStateProcessing},
	BoostStateProcessing:    {BoostStateChecking, BoostStateGuestFallback, BoostStateFailed},
	BoostStateChecking:      {BoostStateBoosting, BoostStateGuestFallback, BoostStateFailed},
	BoostStateBoosting:      {BoostStateSuccess, BoostStateFailed},
	BoostStateGuestFallback: {BoostStateSuccess, BoostStateFailed},
}

// BoostResult classifies the terminal outcome of a boost attempt.
type BoostResult string

const (
	// BoostResultConfirmed means payment was confirmed and the boost recorded.
	BoostResultConfirmed BoostResult = "CONFIRMED_SUCCESS"
	// BoostResultFailed means the attempt terminated without recording a boost.
	BoostResultFailed BoostResult = "CONFIRMED_FAILURE"
	// BoostResultUnconfirmed means the payment outcome was ambiguous and the
	// boost was recorded anyway via the guest fallback.
	BoostResultUnconfirmed BoostResult = "UNCONFIRMED_FALLBACK"
)

// BoostTransaction tracks one boost-payment attempt through the state
// machine. Instances are owned by a single orchestration run and never
// shared across requests.
type BoostTransaction struct {
	CampaignID      int64
	PlanID          int64
	PaymentMethodID int64
	GatewayRef      string
	PollAttempts    int
	State           BoostState
}

// NewBoostTransaction starts a boost attempt in the form state.
func NewBoostTransaction(campaignID, planID, methodID int64) *BoostTransaction {
	return &BoostTransaction{
		CampaignID:      campaignID,
		PlanID:          planID,
		PaymentMethodID: methodID,
		State:           BoostStateForm,
	}
}

// Transition moves the attempt to the next state, rejecting illegal edges.
func (b *BoostTransaction) Transition(to BoostState) error {
	for _, allowed := range boostTransitions[b.State] {
		if allowed == to {
			b.State = to
			return nil
		}
	}
	return fmt.Errorf("boost transaction: illegal transition %s -> %s", b.State, to)
}

// IsTerminal reports whether the attempt reached a final state.
func (b *BoostTransaction) IsTerminal() bool {
	return b.State == BoostStateSuccess || b.State == BoostStateFailed
}

// BoostOutcome is returned to the caller once the attempt terminates.
type BoostOutcome struct {
	State                BoostState  `json:"state"`
	Result               BoostResult `json:"result"`
	GatewayTransactionID string      `json:"transaction_id,omitempty"`
	Message              string      `json:"message"`
	// Caveat carries the "contact support" note for guest-fallback and
	// recording-failure outcomes where money may have moved.
	Caveat string `json:"caveat,omitempty"`
}

// BoostPlan is a purchasable visibility plan for a campaign.
type BoostPlan struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	DurationDays int             `json:"duration_days"`
}

// PaymentMethod is a way of paying for a boost, as published by the
// campaign backend.
type PaymentMethod struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Number   string `json:"number"`
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
}

// PaymentMethodMobileMoney is the method type that requires MoMo fields.
const PaymentMethodMobileMoney = "mobile_money"
