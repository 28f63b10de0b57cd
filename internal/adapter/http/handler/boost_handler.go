package handler

import (
	"strconv"

	"easydonate-payments/internal/adapter/http/dto"
	"easydonate-payments/internal/adapter/http/middleware"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"
	"easydonate-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// BoostHandler handles campaign boost endpoints.
type BoostHandler struct {
	boostSvc ports.BoostService
}

// NewBoostHandler creates a new BoostHandler.
func NewBoostHandler(boostSvc ports.BoostService) *BoostHandler {
	return &BoostHandler{boostSvc: boostSvc}
}

// BoostCampaign handles POST /api/v1/campaigns/:id/boost.
func (h *BoostHandler) BoostCampaign(c *gin.Context) {
	campaignID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || campaignID <= 0 {
		response.Error(c, apperror.Validation("campaign id must be a positive integer"))
		return
	}

	var req dto.BoostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	outcome, err := h.boostSvc.BoostCampaign(c.Request.Context(), ports.BoostRequest{
		UserID:          middleware.UserID(c),
		CampaignID:      campaignID,
		PlanID:          req.PlanID,
		PaymentMethodID: req.PaymentMethodID,
		Customer:        req.Customer,
		MSISDN:          req.MSISDN,
		Narration:       req.Narration,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NewBoostResponse(outcome))
}

// ListPlans handles GET /api/v1/boost-plans.
func (h *BoostHandler) ListPlans(c *gin.Context) {
	plans, err := h.boostSvc.Plans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, dto.PlanResponse{
			ID:           p.ID,
			Name:         p.Name,
			Price:        p.Price,
			DurationDays: p.DurationDays,
		})
	}
	response.OK(c, out)
}

// ListPaymentMethods handles GET /api/v1/payment-methods. Only active
// methods are published to the dashboard.
func (h *BoostHandler) ListPaymentMethods(c *gin.Context) {
	methods, err := h.boostSvc.PaymentMethods(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.PaymentMethodResponse, 0, len(methods))
	for _, m := range methods {
		if !m.IsActive {
			continue
		}
		out = append(out, dto.PaymentMethodResponse{
			ID:       m.ID,
			Name:     m.Name,
			Number:   m.Number,
			Type:     m.Type,
			IsActive: m.IsActive,
		})
	}
	response.OK(c, out)
}
