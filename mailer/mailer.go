// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/danielhkuo/contactdesk/cliparse"
	"github.com/danielhkuo/contactdesk/models"
)

// Notifier sends a best-effort notification for a new submission. Callers
// dispatch it off the request path and only ever log the error.
type Notifier interface {
	Notify(ctx context.Context, sub models.Submission, subject string) error
}

// SMTPMailer sends notifications over SMTP
type SMTPMailer struct {
	cfg    cliparse.MailConfig
	client *mail.Client
}

func NewSMTPMailer(cfg cliparse.MailConfig) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Pass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &SMTPMailer{cfg: cfg, client: client}, nil
}

// Notify composes and sends one notification email. Never retried.
func (m *SMTPMailer) Notify(ctx context.Context, sub models.Submission, subject string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(ComposeSubject(subject))
	msg.SetBodyString(mail.TypeTextPlain, ComposeBody(sub))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// ComposeSubject builds the mail subject, falling back to the default when
// the form omitted one
func ComposeSubject(subject string) string {
	if subject == "" {
		subject = models.DefaultSubject
	}
	return "New Contact Form Submission: " + subject
}

// ComposeBody builds the plaintext notification body from submission fields
func ComposeBody(sub models.Submission) string {
	return fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s\n", sub.Name, sub.Email, sub.Message)
}

// Discard is the Notifier used when no SMTP host is configured
type Discard struct{}

func (Discard) Notify(context.Context, models.Submission, string) error {
	return nil
}
