package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easydonate-payments/config"
	campaignClient "easydonate-payments/internal/adapter/client/campaign"
	ledgerClient "easydonate-payments/internal/adapter/client/ledger"
	momoClient "easydonate-payments/internal/adapter/client/momo"
	httpHandler "easydonate-payments/internal/adapter/http/handler"
	redisStorage "easydonate-payments/internal/adapter/storage/redis"
	"easydonate-payments/internal/core/ports"
	"easydonate-payments/internal/service"
	"easydonate-payments/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {
	// Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Msg("Starting EasyDonate payments service")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("EDP_SESSION_SECRET must be set")
	}
	minWithdrawal, err := decimal.NewFromString(cfg.Payments.MinWithdrawal)
	if err != nil {
		log.Fatal().Err(err).Str("value", cfg.Payments.MinWithdrawal).Msg("Invalid minimum withdrawal amount")
	}

	ctx := context.Background()

	// Initialize Redis client
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()
	log.Info().Msg("Redis connected")

	// Initialize Redis stores
	sessionStore := redisStorage.NewSessionStore(rdb)
	inflightStore := redisStorage.NewInflightStore(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	// Initialize backend clients. The gateway gets a long timeout since a
	// debit can sit behind a subscriber PIN prompt.
	gateway := momoClient.New(
		cfg.Gateway.BaseURL,
		cfg.Gateway.APIKey,
		&http.Client{Timeout: cfg.Gateway.Timeout},
		log,
	)
	ledger := ledgerClient.New(
		cfg.Ledger.BaseURL,
		&http.Client{Timeout: cfg.Ledger.Timeout},
		log,
	)
	campaign := campaignClient.New(
		cfg.Campaign.BaseURL,
		&http.Client{Timeout: cfg.Campaign.Timeout},
		log,
	)

	// Initialize business services
	sessionSvc := service.NewSessionService(sessionStore, cfg.Session.Secret, cfg.Session.TTL, cfg.Session.Issuer, log)
	walletSvc := service.NewWalletService(ledger, gateway, log)
	withdrawalSvc := service.NewWithdrawalService(
		gateway,
		ledger,
		inflightStore,
		minWithdrawal,
		cfg.Payments.DefaultNarration,
		cfg.Gateway.SuccessCode,
		log,
	)
	boostSvc := service.NewBoostService(
		gateway,
		campaign,
		inflightStore,
		cfg.Gateway.SuccessCode,
		cfg.Gateway.SentinelCode,
		cfg.Payments.StatusPollMax,
		cfg.Payments.StatusPollDelay,
		log,
	)

	// Initialize health checkers
	healthHTTPClient := &http.Client{Timeout: 5 * time.Second}
	redisHealth := redisStorage.NewHealthCheck(rdb)
	gatewayHealth := momoClient.NewHealthCheck(cfg.Gateway.BaseURL, healthHTTPClient)
	ledgerHealth := ledgerClient.NewHealthCheck(cfg.Ledger.BaseURL, healthHTTPClient)

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		SessionSvc:     sessionSvc,
		WalletSvc:      walletSvc,
		WithdrawalSvc:  withdrawalSvc,
		BoostSvc:       boostSvc,
		RateLimitStore: rateLimitStore,
		HealthCheckers: []ports.HealthChecker{redisHealth, gatewayHealth, ledgerHealth},
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
