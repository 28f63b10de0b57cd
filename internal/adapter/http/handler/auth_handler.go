package handler

import (
	"net/http"

	"easydonate-payments/internal/adapter/http/dto"
	"easydonate-payments/internal/adapter/http/middleware"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/pkg/apperror"
	"easydonate-payments/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles dashboard session endpoints.
type AuthHandler struct {
	sessionSvc ports.SessionService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(sessionSvc ports.SessionService) *AuthHandler {
	return &AuthHandler{sessionSvc: sessionSvc}
}

// OpenSession handles POST /api/v1/auth/session. The dashboard exchanges
// the upstream bearer token for a session token; the upstream token never
// reaches the browser again.
func (h *AuthHandler) OpenSession(c *gin.Context) {
	var req dto.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	token, expiry, err := h.sessionSvc.Open(c.Request.Context(), req.UserID, req.UpstreamToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.OpenSessionResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// CloseSession handles DELETE /api/v1/auth/session.
func (h *AuthHandler) CloseSession(c *gin.Context) {
	sessionID := middleware.SessionID(c)
	if sessionID == "" {
		response.Error(c, apperror.ErrInvalidSession())
		return
	}

	if err := h.sessionSvc.Close(c.Request.Context(), sessionID); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"closed": true})
}

// HealthCheck handles GET /health, a deep health check verifying all
// dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
