package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Company the matcher reconciles for. Its own name is ignored when
	// extracting counterparties from attachments.
	CompanyName string `env:"COMPANY_NAME" envDefault:""`

	// Fixture files
	TransactionsFile string `env:"TRANSACTIONS_FILE" envDefault:"data/transactions.json"`
	AttachmentsFile  string `env:"ATTACHMENTS_FILE"  envDefault:"data/attachments.json"`
	ExpectedFile     string `env:"EXPECTED_FILE"     envDefault:""`

	// Matching
	AmountTolerance   string  `env:"AMOUNT_TOLERANCE"    envDefault:"0.01"`
	DateToleranceDays int     `env:"DATE_TOLERANCE_DAYS" envDefault:"1"`
	MinConfidence     float64 `env:"MIN_CONFIDENCE"      envDefault:"0.4"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"30s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
