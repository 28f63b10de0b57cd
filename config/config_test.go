package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)

	assert.Equal(t, "localhost", cfg.Redis.Host)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.Equal(t, 0, cfg.Redis.DB)

	assert.Equal(t, 120*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, "000", cfg.Gateway.SuccessCode)
	assert.Equal(t, "100", cfg.Gateway.SentinelCode)

	assert.Equal(t, 30*time.Second, cfg.Ledger.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Campaign.Timeout)

	assert.Equal(t, "GHS", cfg.Payments.Currency)
	assert.Equal(t, "10", cfg.Payments.MinWithdrawal)
	assert.Equal(t, 3, cfg.Payments.StatusPollMax)
	assert.Equal(t, 2*time.Second, cfg.Payments.StatusPollDelay)
	assert.Equal(t, "Credit MTN Customer", cfg.Payments.DefaultNarration)

	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "easydonate-payments", cfg.Session.Issuer)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Log.Pretty)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	content := []byte(`
server:
  host: "127.0.0.1"
  port: 9090
  mode: "release"
redis:
  host: "redis.example.com"
  port: 6380
  password: "redispwd"
  db: 2
gateway:
  base_url: "https://momo.example.com/api"
  api_key: "gw-key-123"
  timeout: "90s"
  success_code: "000"
  sentinel_code: "100"
ledger:
  base_url: "https://wallet.internal"
  timeout: "15s"
campaign:
  base_url: "https://campaigns.internal"
  timeout: "20s"
payments:
  currency: "GHS"
  min_withdrawal: "20"
  status_poll_max: 5
  status_poll_delay: "3s"
session:
  secret: "my-session-secret"
  ttl: "12h"
  issuer: "test-payments"
log:
  level: "debug"
  pretty: true
`)
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)

	assert.Equal(t, "redis.example.com", cfg.Redis.Host)
	assert.Equal(t, 6380, cfg.Redis.Port)
	assert.Equal(t, "redispwd", cfg.Redis.Password)
	assert.Equal(t, 2, cfg.Redis.DB)

	assert.Equal(t, "https://momo.example.com/api", cfg.Gateway.BaseURL)
	assert.Equal(t, "gw-key-123", cfg.Gateway.APIKey)
	assert.Equal(t, 90*time.Second, cfg.Gateway.Timeout)

	assert.Equal(t, "https://wallet.internal", cfg.Ledger.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Ledger.Timeout)
	assert.Equal(t, "https://campaigns.internal", cfg.Campaign.BaseURL)
	assert.Equal(t, 20*time.Second, cfg.Campaign.Timeout)

	assert.Equal(t, "20", cfg.Payments.MinWithdrawal)
	assert.Equal(t, 5, cfg.Payments.StatusPollMax)
	assert.Equal(t, 3*time.Second, cfg.Payments.StatusPollDelay)

	assert.Equal(t, "my-session-secret", cfg.Session.Secret)
	assert.Equal(t, 12*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "test-payments", cfg.Session.Issuer)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EDP_SERVER_PORT", "3000")
	t.Setenv("EDP_GATEWAY_BASE_URL", "https://env-gateway.example.com")
	t.Setenv("EDP_SESSION_SECRET", "env-secret")
	t.Setenv("EDP_PAYMENTS_STATUS_POLL_MAX", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "https://env-gateway.example.com", cfg.Gateway.BaseURL)
	assert.Equal(t, "env-secret", cfg.Session.Secret)
	assert.Equal(t, 7, cfg.Payments.StatusPollMax)
}

func TestLoad_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("server: [not a map"), 0644))

	_, err := Load(cfgPath)
	assert.Error(t, err)
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "10.0.0.5", Port: 6380}
	assert.Equal(t, "10.0.0.5:6380", r.Addr())
}
