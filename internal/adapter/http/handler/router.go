package handler

import (
	"easydonate-payments/internal/adapter/http/middleware"
	redisStore "easydonate-payments/internal/adapter/storage/redis"
	"easydonate-payments/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	SessionSvc     ports.SessionService
	WalletSvc      ports.WalletService
	WithdrawalSvc  ports.WithdrawalService
	BoostSvc       ports.BoostService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep, verifies Redis + the momo gateway)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	sessionAuth := middleware.SessionAuth(deps.SessionSvc, deps.Logger)

	// --- Session routes ---
	authHandler := NewAuthHandler(deps.SessionSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/session", rl("session"), authHandler.OpenSession)
		auth.DELETE("/session", sessionAuth, authHandler.CloseSession)
	}

	// --- Dashboard reads ---
	walletHandler := NewWalletHandler(deps.WalletSvc)
	wallet := v1.Group("/wallet", sessionAuth)
	{
		wallet.GET("/balance", rl("dashboard"), walletHandler.GetBalance)
		wallet.GET("/stats", rl("dashboard"), walletHandler.GetStats)
	}

	// --- Withdrawals ---
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalSvc)
	withdrawals := v1.Group("/withdrawals", sessionAuth)
	{
		withdrawals.GET("/quote", rl("dashboard"), walletHandler.GetQuote)
		withdrawals.GET("/fees", rl("dashboard"), walletHandler.GetFeeRanges)
		withdrawals.POST("", rl("withdrawals"), withdrawalHandler.RequestWithdrawal)
	}

	v1.POST("/payments/name-enquiry", sessionAuth, rl("dashboard"), walletHandler.NameEnquiry)

	// --- Boosts ---
	boostHandler := NewBoostHandler(deps.BoostSvc)
	v1.GET("/boost-plans", sessionAuth, rl("dashboard"), boostHandler.ListPlans)
	v1.GET("/payment-methods", sessionAuth, rl("dashboard"), boostHandler.ListPaymentMethods)
	v1.POST("/campaigns/:id/boost", sessionAuth, rl("boosts"), boostHandler.BoostCampaign)

	return r
}
