package handler

import (
	"time"

	"easydonate-payments/internal/adapter/http/dto"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"
	"easydonate-payments/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// WalletHandler handles wallet read and fee quotation endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	balance, err := h.walletSvc.Balance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		Balance:  balance.Balance,
		Currency: balance.Currency,
	})
}

// GetStats handles GET /api/v1/wallet/stats.
func (h *WalletHandler) GetStats(c *gin.Context) {
	stats, err := h.walletSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		AvailableBalance: stats.AvailableBalance,
		TotalWithdrawn:   stats.TotalWithdrawn,
		TotalWithdrawals: stats.TotalWithdrawals,
		Currency:         stats.Currency,
		Status:           stats.Status,
		UpdatedAt:        stats.UpdatedAt.UTC().Format(time.RFC3339),
	})
}

// GetQuote handles GET /api/v1/withdrawals/quote?amount=1000. A purely
// local computation: no backend is touched and nothing is reserved.
func (h *WalletHandler) GetQuote(c *gin.Context) {
	raw := c.Query("amount")
	if raw == "" {
		response.Error(c, apperror.Validation("amount query parameter is required"))
		return
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		response.Error(c, apperror.Validation("amount must be a decimal number"))
		return
	}

	q := h.walletSvc.Quote(amount)
	response.OK(c, dto.QuoteResponse{
		Amount:         q.Gross,
		BaseFeePercent: q.BaseFeePercent,
		ServicePercent: q.ServicePercent,
		TotalPercent:   q.TotalPercent,
		Fee:            q.Fee,
		Net:            q.Net,
	})
}

// GetFeeRanges handles GET /api/v1/withdrawals/fees.
func (h *WalletHandler) GetFeeRanges(c *gin.Context) {
	ranges := h.walletSvc.FeeRanges()
	out := make([]dto.FeeRangeResponse, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, dto.FeeRangeResponse{
			Range:       r.Range,
			Rate:        r.Rate,
			Description: r.Description,
		})
	}
	response.OK(c, out)
}

// NameEnquiry handles POST /api/v1/payments/name-enquiry.
func (h *WalletHandler) NameEnquiry(c *gin.Context) {
	var req dto.NameEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrInvalidNetwork())
		return
	}

	name, carrier, err := h.walletSvc.NameEnquiry(c.Request.Context(), req.MSISDN)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.NameEnquiryResponse{
		Name:    name,
		Network: string(carrier),
	})
}
