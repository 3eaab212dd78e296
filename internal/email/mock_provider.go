package email

import "practicehub_backend/internal/logger"

// MockProvider logs outbound mail instead of sending it. Used in
// development when no SMTP host is configured.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	logger.Info("mock email", "to", email.To, "subject", email.Subject)
	return nil
}

func (p *MockProvider) SendOTP(to, code string) error {
	logger.Info("mock otp email", "to", to, "code", code)
	return nil
}

func (p *MockProvider) SendPasswordReset(to, resetURL string) error {
	logger.Info("mock password reset email", "to", to, "url", resetURL)
	return nil
}

func (p *MockProvider) Validate() error {
	return nil
}
