// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

// Config is the full service configuration. Gateway limits default to the
// fixed production constants; they are exposed so operators can pin them
// per deployment, not tuned at runtime.
type Config struct {
	GRPCPort int `env:"LEVELGEN_GRPC_PORT" envDefault:"50051"`
	HTTPPort int `env:"LEVELGEN_HTTP_PORT" envDefault:"8080"`

	LogMode     string `env:"LEVELGEN_LOG_MODE" envDefault:"development"`
	LogLevel    string `env:"LEVELGEN_LOG_LEVEL" envDefault:"info"`
	LogHashSalt string `env:"LEVELGEN_LOG_HASH_SALT"`

	// Store selects the admission/cache backend: "memory" or "redis"
	Store     string `env:"LEVELGEN_STORE" envDefault:"memory"`
	RedisAddr string `env:"LEVELGEN_REDIS_ADDR" envDefault:"localhost:6379"`

	GeminiAPIKey string        `env:"LEVELGEN_GEMINI_API_KEY"`
	GeminiModel  string        `env:"LEVELGEN_GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	Temperature  float32       `env:"LEVELGEN_TEMPERATURE" envDefault:"0.7"`
	Timeout      time.Duration `env:"LEVELGEN_BACKEND_TIMEOUT" envDefault:"30s"`

	RateLimitWindow      time.Duration `env:"LEVELGEN_RATE_LIMIT_WINDOW" envDefault:"60s"`
	RateLimitMaxRequests int           `env:"LEVELGEN_RATE_LIMIT_MAX" envDefault:"10"`
	AdmissionIdleTTL     time.Duration `env:"LEVELGEN_ADMISSION_IDLE_TTL" envDefault:"0s"`
	AdmissionSweepEvery  time.Duration `env:"LEVELGEN_ADMISSION_SWEEP_INTERVAL" envDefault:"1m"`
	DialogCacheCapacity  int           `env:"LEVELGEN_DIALOG_CACHE_CAPACITY" envDefault:"100"`

	AllowedOrigins []string `env:"LEVELGEN_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:5173"`
	TrustedProxies []string `env:"LEVELGEN_TRUSTED_PROXIES" envSeparator:","`

	OTLPEndpoint string `env:"LEVELGEN_OTEL_ENDPOINT"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	vb.PositiveField("GRPCPort", int64(c.GRPCPort))
	vb.PositiveField("HTTPPort", int64(c.HTTPPort))
	vb.PositiveField("RateLimitWindow", int64(c.RateLimitWindow))
	vb.PositiveField("RateLimitMaxRequests", int64(c.RateLimitMaxRequests))
	vb.PositiveField("DialogCacheCapacity", int64(c.DialogCacheCapacity))
	vb.PositiveField("Timeout", int64(c.Timeout))
	if len(c.AllowedOrigins) == 0 {
		vb.RequiredField("AllowedOrigins")
	}
	if c.AdmissionIdleTTL < 0 {
		vb.Field("AdmissionIdleTTL", "must not be negative")
	}
	if c.AdmissionIdleTTL > 0 {
		vb.PositiveField("AdmissionSweepEvery", int64(c.AdmissionSweepEvery))
	}

	switch c.Store {
	case StoreMemory:
	case StoreRedis:
		if c.RedisAddr == "" {
			vb.RequiredField("RedisAddr")
		}
	default:
		vb.Fieldf("Store", "must be one of: %s, %s", StoreMemory, StoreRedis)
	}

	return vb.Build()
}

// Store backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
)
