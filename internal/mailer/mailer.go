package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/winetasting-app/backend/internal/logger"
)

// Mailer sends transactional emails through SendGrid. With no API key
// configured it logs the message instead of sending, so local setups work
// without an account.
type Mailer struct {
	apiKey    string
	fromEmail string
	fromName  string
}

// Opt configures a Mailer instance.
type Opt func(*Mailer)

// WithAPIKey sets the SendGrid API key. Empty means simulation mode.
func WithAPIKey(key string) Opt {
	return func(m *Mailer) { m.apiKey = key }
}

// WithSender sets the sender identity on outgoing mail.
func WithSender(name, email string) Opt {
	return func(m *Mailer) {
		m.fromName = name
		m.fromEmail = email
	}
}

// New creates a Mailer with the given options.
func New(opts ...Opt) *Mailer {
	m := &Mailer{
		fromName:  "Wine Tasting",
		fromEmail: "noreply@winetasting.app",
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mailer) send(ctx context.Context, toEmail, toName, subject, plain, html string) error {
	if m.apiKey == "" {
		logger.Log.Infow("email simulated, no API key configured",
			"to", toEmail,
			"subject", subject,
		)
		return nil
	}

	from := mail.NewEmail(m.fromName, m.fromEmail)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, plain, html)

	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		logger.Log.Errorw("email send failed", "to", toEmail, "subject", subject, "error", err)
		return err
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid returned status %d", response.StatusCode)
		logger.Log.Errorw("email rejected", "to", toEmail, "subject", subject, "error", err)
		return err
	}

	logger.Log.Infow("email sent", "to", toEmail, "subject", subject, "status", response.StatusCode)
	return nil
}

func greetingName(firstName *string, fallback string) string {
	if firstName != nil && *firstName != "" {
		return *firstName
	}
	return fallback
}

// SendPasswordReset emails a password reset link. The link embeds a
// single-use token valid for a limited time.
func (m *Mailer) SendPasswordReset(ctx context.Context, email string, firstName *string, resetLink string) error {
	name := greetingName(firstName, "there")
	subject := "Reset your password"

	plain := fmt.Sprintf(
		"Hello %s,\n\nA password reset was requested for your account. Follow this link to choose a new password:\n\n%s\n\nThe link expires in 24 hours. If you did not request a reset, you can ignore this email.",
		name, resetLink,
	)
	html := fmt.Sprintf(
		`<p>Hello %s,</p><p>A password reset was requested for your account. Follow this link to choose a new password:</p><p><a href=%q>Reset password</a></p><p>The link expires in 24 hours. If you did not request a reset, you can ignore this email.</p>`,
		name, resetLink,
	)

	return m.send(ctx, email, name, subject, plain, html)
}

// SendParticipantInvitation emails a newly created participant the
// activation link used to set their initial password.
func (m *Mailer) SendParticipantInvitation(ctx context.Context, email, firstName, activationLink string) error {
	name := greetingName(&firstName, "there")
	subject := "You are invited to the wine tasting"

	plain := fmt.Sprintf(
		"Hello %s,\n\nAn account has been created for you on the wine tasting platform. Follow this link to set your password and get started:\n\n%s",
		name, activationLink,
	)
	html := fmt.Sprintf(
		`<p>Hello %s,</p><p>An account has been created for you on the wine tasting platform. Follow this link to set your password and get started:</p><p><a href=%q>Activate account</a></p>`,
		name, activationLink,
	)

	return m.send(ctx, email, name, subject, plain, html)
}
