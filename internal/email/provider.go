// Package email provides email provider interface.
package email

import (
	"context"
	"fmt"
)

type Provider interface {
	SendEmail(ctx context.Context, email *Email) error
}

type Email struct {
	To      string
	Subject string
	Text    string
}

type Config struct {
	Provider string
	From     string

	// SMTP relay settings.
	Host string
	Port int
	User string
	Pass string

	// Resend settings.
	ResendAPIKey string
}

func NewProvider(config Config) (Provider, error) {
	switch config.Provider {
	case "smtp", "":
		return NewSMTPProvider(config.Host, config.Port, config.User, config.Pass, config.From), nil
	case "resend":
		return NewResendProvider(config.ResendAPIKey, config.From), nil
	default:
		return nil, fmt.Errorf("EMAIL_PROVIDER must be either 'smtp' or 'resend'")
	}
}
