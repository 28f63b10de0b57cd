package handler

import (
	"easydonate-payments/internal/adapter/http/dto"
	"easydonate-payments/internal/adapter/http/middleware"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"
	"easydonate-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// WithdrawalHandler handles payout endpoints.
type WithdrawalHandler struct {
	withdrawalSvc ports.WithdrawalService
}

// NewWithdrawalHandler creates a new WithdrawalHandler.
func NewWithdrawalHandler(withdrawalSvc ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalSvc: withdrawalSvc}
}

// RequestWithdrawal handles POST /api/v1/withdrawals.
func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	var req dto.WithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	outcome, err := h.withdrawalSvc.RequestWithdrawal(c.Request.Context(), ports.WithdrawalRequest{
		UserID:    middleware.UserID(c),
		Customer:  req.Customer,
		MSISDN:    req.MSISDN,
		Amount:    req.Amount,
		Narration: req.Narration,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.WithdrawalResponse{
		Reference:             outcome.Reference,
		TransactionID:         outcome.GatewayTransactionID,
		Amount:                outcome.Amount,
		Fees:                  outcome.Fees,
		NewBalance:            outcome.NewBalance,
		Currency:              outcome.Currency,
		Network:               string(outcome.Carrier),
		ReconciliationWarning: outcome.ReconciliationWarning,
	})
}
