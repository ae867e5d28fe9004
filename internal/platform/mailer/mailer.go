// Package mailer provides the outbound email capability.
// Delivery is best-effort: callers fire it after their own work has
// committed and must never fail because a message could not be sent.
package mailer

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"onboarding_backend/internal/platform/config"
)

// Email is a single outbound message.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer sends emails.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// New returns an SMTP-backed mailer when SMTP is configured and a no-op
// mailer otherwise, so the notification capability is always injectable.
func New(cfg config.SMTPConfig) Mailer {
	if !cfg.Enabled() {
		return noopMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

// smtpMailer delivers mail through a plain SMTP relay.
type smtpMailer struct {
	cfg config.SMTPConfig
}

func (m *smtpMailer) Send(_ context.Context, email Email) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", email.To)
	fmt.Fprintf(&msg, "Subject: %s\r\n", email.Subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(email.HTMLBody)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.From, []string{email.To}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", email.To, err)
	}
	return nil
}

// noopMailer drops messages. Used when SMTP is not configured.
type noopMailer struct{}

func (noopMailer) Send(_ context.Context, email Email) error {
	slog.Info("mail delivery disabled, dropping message", "to", email.To, "subject", email.Subject)
	return nil
}
