package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	AccessToken   string `env:"ACCESS_TOKEN"`
	LocationID    string `env:"LOCATION_ID"`
	SquareBaseURL string `env:"SQUARE_BASE_URL" envDefault:"https://connect.squareup.com" validate:"required,url"`
	Currency      string `env:"CURRENCY" envDefault:"CAD" validate:"required,len=3,alpha"`

	EmailProvider string `env:"EMAIL_PROVIDER" envDefault:"smtp" validate:"omitempty,oneof=smtp resend"`
	EmailHost     string `env:"EMAIL_HOST"`
	EmailPort     int    `env:"EMAIL_PORT" envDefault:"587" validate:"gt=0,lte=65535"`
	EmailUser     string `env:"EMAIL_USER"`
	EmailPass     string `env:"EMAIL_PASS"`
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	BusinessEmail string `env:"BUSINESS_EMAIL" validate:"omitempty,email"`

	DiscountCode   string `env:"DISCOUNT_CODE" envDefault:"NEWBIE123"`
	DiscountAmount int64  `env:"DISCOUNT_AMOUNT" envDefault:"5" validate:"gte=0"`

	NoImagePlaceholderURL string `env:"NO_IMAGE_PLACEHOLDER_URL" validate:"omitempty,url"`

	CacheProvider         string `env:"CACHE_PROVIDER" envDefault:"memory" validate:"omitempty,oneof=memory redis"`
	RedisConnectionString string `env:"REDIS_CONNECTION_STRING" envDefault:"redis://localhost:6379/0" validate:"required_if=CacheProvider redis"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text" validate:"omitempty,oneof=text json"`
	Port      string     `env:"PORT" envDefault:"8000"`
}

var configValidator = validator.New()

func Load() (*Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if err := configValidator.Struct(c); err != nil {
		return err
	}

	switch c.EmailProvider {
	case "resend":
		if strings.TrimSpace(c.ResendAPIKey) == "" {
			return fmt.Errorf("RESEND_API_KEY is required when EMAIL_PROVIDER is resend")
		}
	default:
		hasUser := strings.TrimSpace(c.EmailUser) != ""
		hasPass := strings.TrimSpace(c.EmailPass) != ""
		if hasUser != hasPass {
			return fmt.Errorf("EMAIL_USER and EMAIL_PASS must be set together")
		}
	}

	return nil
}

// CredentialWarnings reports missing provider credentials. The server still
// starts without them; provider calls will fail until they are supplied.
func (c *Config) CredentialWarnings() []string {
	var warnings []string
	if strings.TrimSpace(c.AccessToken) == "" {
		warnings = append(warnings, "ACCESS_TOKEN is not set; Square API calls will be rejected")
	}
	if strings.TrimSpace(c.LocationID) == "" {
		warnings = append(warnings, "LOCATION_ID is not set; payments and orders cannot be created")
	}
	return warnings
}
