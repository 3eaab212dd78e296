package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		renderer: renderer,
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}
	if p.config.FromName != "" {
		m.SetHeader("From", m.FormatAddress(from, p.config.FromName))
	} else {
		m.SetHeader("From", from)
	}
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	d := gomail.NewDialer(p.config.Host, p.config.Port, p.config.Username, p.config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendOTP(to, code string) error {
	htmlBody, err := p.renderer.Render(TemplateOTP, TemplateData{"Code": code})
	if err != nil {
		return fmt.Errorf("failed to render otp template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Your verification code",
		Body:     fmt.Sprintf("Your verification code is %s", code),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) SendPasswordReset(to, resetURL string) error {
	htmlBody, err := p.renderer.Render(TemplatePasswordReset, TemplateData{"ResetURL": resetURL})
	if err != nil {
		return fmt.Errorf("failed to render reset template: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "Reset your password",
		Body:     fmt.Sprintf("Reset your password: %s", resetURL),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if p.config.Port <= 0 || p.config.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", p.config.Port)
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("SMTP from address is required")
	}
	return nil
}
