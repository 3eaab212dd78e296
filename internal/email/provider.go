package email

// Provider sends outbound mail. Callers treat a returned error as a hard
// failure of the current request; there are no retries.
type Provider interface {
	// Send delivers a fully-built message.
	Send(email *Email) error

	// SendOTP delivers a registration verification code.
	SendOTP(to, code string) error

	// SendPasswordReset delivers a reset link.
	SendPasswordReset(to, resetURL string) error

	// Validate checks the provider configuration.
	Validate() error
}

// TemplateRenderer renders named HTML templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
