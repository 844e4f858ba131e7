// Package mailer delivers the marketplace's outbound mail, currently just
// support-form messages. Without SMTP configuration a mock sender is used
// so development needs no mail server.
package mailer

import (
	"context"
	"os"
)

type Email struct {
	FromName string
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	TextBody string
}

type Service interface {
	Send(ctx context.Context, e Email) error
}

// FromEnv returns the SMTP sender when SMTP_HOST is set and the mock
// otherwise.
func FromEnv() Service {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return &Mock{}
	}
	return NewSMTP(SMTPConfig{
		Host:     host,
		Port:     envOr("SMTP_PORT", "587"),
		User:     os.Getenv("SMTP_USER"),
		Pass:     os.Getenv("SMTP_PASS"),
		StartTLS: os.Getenv("SMTP_STARTTLS") != "false",
	})
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
