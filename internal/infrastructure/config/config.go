package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Metrics server
	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Cache (empty REDIS_URL selects the in-process cache)
	RedisURL  string        `env:"REDIS_URL"  envDefault:""`
	CacheTTL  time.Duration `env:"CACHE_TTL"  envDefault:"5m"`
	CacheSize int           `env:"CACHE_SIZE" envDefault:"256"`

	// Idempotency
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL" envDefault:"24h"`

	// Reference data
	BaseCurrency      string `env:"BASE_CURRENCY"       envDefault:"USD"`
	DisplayCurrency   string `env:"DISPLAY_CURRENCY"    envDefault:"USD"`
	ReferenceDataPath string `env:"REFERENCE_DATA_PATH" envDefault:""`
	SeedDemoData      bool   `env:"SEED_DEMO_DATA"      envDefault:"false"`

	// Rate limiting (0 RPS disables it)
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS"   envDefault:"50"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"100"`
}

// Load loads configuration from environment variables. Variables from the
// given dotenv files (".env" when none are given) are applied first
// without overriding the real environment; missing files are ignored.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if cfg.BaseCurrency != "USD" {
		return nil, fmt.Errorf("unsupported BASE_CURRENCY %q: rates are expressed against USD", cfg.BaseCurrency)
	}

	return cfg, nil
}
