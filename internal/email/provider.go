package email

import (
	"gopkg.in/gomail.v2"

	"physique_backend/internal/config"
	"physique_backend/internal/logger"
)

// Provider delivers outbound mail. The SMTP provider is used in
// production; the log provider stands in when SMTP is not configured.
type Provider interface {
	Send(to, subject, htmlBody string) error
}

// SMTPProvider delivers mail through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.Email.FromEmail, p.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)
	return d.DialAndSend(m)
}

// LogProvider writes mail to the application log instead of sending it.
// Used in development and tests.
type LogProvider struct{}

func NewLogProvider() *LogProvider { return &LogProvider{} }

func (p *LogProvider) Send(to, subject, htmlBody string) error {
	logger.Info("email suppressed (no SMTP configured)",
		"to", to,
		"subject", subject,
	)
	return nil
}

// NewProvider picks the SMTP provider when a host is configured and the
// log provider otherwise.
func NewProvider(cfg *config.Config) Provider {
	if cfg.Email.SMTPHost == "" {
		return NewLogProvider()
	}
	return NewSMTPProvider(cfg)
}
