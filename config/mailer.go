package config

import (
	"schoolmgmt/domain"

	"gopkg.in/gomail.v2"
)

type smtpMailer struct {
	dialer *gomail.Dialer
	sender string
}

// NewMailer returns nil when SMTP is not configured; the notification
// usecase reports that as UpstreamUnavailable.
func NewMailer(cfg *Config) domain.Mailer {
	if cfg.SMTPHost == "" || cfg.EmailSender == "" {
		return nil
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		sender: cfg.EmailSender,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
