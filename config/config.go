package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Ledger   BackendConfig  `mapstructure:"ledger"`
	Campaign BackendConfig  `mapstructure:"campaign"`
	Payments PaymentsConfig `mapstructure:"payments"`
	Session  SessionConfig  `mapstructure:"session"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// GatewayConfig configures the external mobile-money gateway client.
// Mobile-money debits can sit behind a subscriber PIN prompt, hence the
// long timeout.
type GatewayConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	APIKey      string        `mapstructure:"api_key"`
	Timeout     time.Duration `mapstructure:"timeout"`
	SuccessCode string        `mapstructure:"success_code"`
	// SentinelCode is the gateway's "cancelled or insufficient balance"
	// rejection. The only rejection that guarantees no charge happened.
	SentinelCode string `mapstructure:"sentinel_code"`
}

// BackendConfig configures an internal backend HTTP client (wallet ledger,
// campaign service).
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type PaymentsConfig struct {
	Currency         string        `mapstructure:"currency"`
	MinWithdrawal    string        `mapstructure:"min_withdrawal"`
	StatusPollMax    int           `mapstructure:"status_poll_max"`
	StatusPollDelay  time.Duration `mapstructure:"status_poll_delay"`
	DefaultNarration string        `mapstructure:"default_narration"`
}

type SessionConfig struct {
	Secret string        `mapstructure:"secret"`
	TTL    time.Duration `mapstructure:"ttl"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: EDP_ (EasyDonate Payments).
// Nested keys use underscore: EDP_GATEWAY_BASE_URL, EDP_SESSION_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("gateway.base_url", "")
	v.SetDefault("gateway.api_key", "")
	v.SetDefault("gateway.timeout", "120s")
	v.SetDefault("gateway.success_code", "000")
	v.SetDefault("gateway.sentinel_code", "100")
	v.SetDefault("ledger.base_url", "")
	v.SetDefault("ledger.timeout", "30s")
	v.SetDefault("campaign.base_url", "")
	v.SetDefault("campaign.timeout", "30s")
	v.SetDefault("payments.currency", "GHS")
	v.SetDefault("payments.min_withdrawal", "10")
	v.SetDefault("payments.status_poll_max", 3)
	v.SetDefault("payments.status_poll_delay", "2s")
	v.SetDefault("payments.default_narration", "Credit MTN Customer")
	v.SetDefault("session.secret", "")
	v.SetDefault("session.ttl", "24h")
	v.SetDefault("session.issuer", "easydonate-payments")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: EDP_GATEWAY_BASE_URL -> gateway.base_url
	v.SetEnvPrefix("EDP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
