package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/seu-repo/bss-ve/internal/ports"
)

// Provider defines the interface for email providers
type Provider interface {
	Send(ctx context.Context, to, subject, body string, isHTML bool) error
}

// Config holds notification service configuration
type Config struct {
	// Provider type: "sendgrid" or "smtp"
	Provider string

	FromEmail string
	FromName  string

	SendGridAPIKey string

	// SMTP configuration (for Mailhog or other SMTP servers)
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	SMTPUseTLS   bool
}

// DefaultConfig returns a default configuration for development (Mailhog)
func DefaultConfig() *Config {
	return &Config{
		Provider:   "smtp",
		FromEmail:  "noreply@bss-ve.com",
		FromName:   "BSS-VE",
		SMTPHost:   "localhost",
		SMTPPort:   1025,
		SMTPUseTLS: false,
	}
}

// Service sends operational emails to riders.
type Service struct {
	config   *Config
	provider Provider
	users    ports.UserRepository
	receipt  *template.Template
	log      *zap.Logger
}

func NewService(config *Config, users ports.UserRepository, log *zap.Logger) (*Service, error) {
	if config == nil {
		config = DefaultConfig()
	}

	s := &Service{
		config:  config,
		users:   users,
		receipt: template.Must(template.New("receipt").Parse(receiptTemplate)),
		log:     log,
	}

	switch config.Provider {
	case "sendgrid":
		if config.SendGridAPIKey == "" {
			return nil, fmt.Errorf("SendGrid API key is required")
		}
		s.provider = NewSendGridProvider(config.SendGridAPIKey, config.FromEmail, config.FromName)
	case "smtp":
		s.provider = NewSMTPProvider(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPUsername,
			config.SMTPPassword,
			config.FromEmail,
			config.FromName,
			config.SMTPUseTLS,
		)
	default:
		return nil, fmt.Errorf("unknown email provider: %s", config.Provider)
	}

	return s, nil
}

// Send sends a plain-text email
func (s *Service) Send(ctx context.Context, to, subject, body string) error {
	s.log.Info("Sending email",
		zap.String("to", to),
		zap.String("subject", subject),
	)

	if err := s.provider.Send(ctx, to, subject, body, false); err != nil {
		s.log.Error("Failed to send email",
			zap.String("to", to),
			zap.Error(err),
		)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

type billingPaidEvent struct {
	BillingID    uint     `json:"billing_id"`
	UserID       uint     `json:"user_id"`
	BillingMonth string   `json:"billing_month"`
	PaidAmount   *float64 `json:"paid_amount"`
}

// HandleBillingPaid is the billing.paid subscriber. It emails a payment
// receipt to the rider whose invoice was settled.
func (s *Service) HandleBillingPaid(data []byte) error {
	var event billingPaidEvent
	if err := json.Unmarshal(data, &event); err != nil {
		return fmt.Errorf("invalid billing.paid payload: %w", err)
	}

	ctx := context.Background()
	user, err := s.users.FindByID(ctx, event.UserID)
	if err != nil {
		return err
	}

	amount := "-"
	if event.PaidAmount != nil {
		amount = fmt.Sprintf("R$ %.2f", *event.PaidAmount)
	}

	var buf bytes.Buffer
	err = s.receipt.Execute(&buf, map[string]interface{}{
		"UserName":     user.Name,
		"BillingMonth": event.BillingMonth,
		"PaidAmount":   amount,
	})
	if err != nil {
		return fmt.Errorf("failed to render receipt: %w", err)
	}

	subject := fmt.Sprintf("Payment received for %s", event.BillingMonth)
	if err := s.provider.Send(ctx, user.Email, subject, buf.String(), true); err != nil {
		s.log.Error("Failed to send payment receipt",
			zap.Uint("billing_id", event.BillingID),
			zap.String("to", user.Email),
			zap.Error(err),
		)
		return err
	}

	s.log.Info("Payment receipt sent",
		zap.Uint("billing_id", event.BillingID),
		zap.String("to", user.Email),
	)
	return nil
}

const receiptTemplate = `
<html>
<body>
	<h2>Payment received</h2>
	<p>Hi {{.UserName}},</p>
	<p>We received your payment of <strong>{{.PaidAmount}}</strong> for the billing month <strong>{{.BillingMonth}}</strong>.</p>
	<p>Thank you for riding with us.</p>
</body>
</html>
`
