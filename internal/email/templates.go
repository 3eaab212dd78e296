package email

import (
	"fmt"
	"html/template"
	"strings"
	"sync"
)

// Built-in template names.
const (
	TemplateOTP           = "registration_otp"
	TemplatePasswordReset = "password_reset"
)

const otpTemplate = `<html><body>
<p>Welcome! Your verification code is:</p>
<h2>{{.Code}}</h2>
<p>Enter this code to finish creating your account.</p>
</body></html>`

const passwordResetTemplate = `<html><body>
<p>We received a request to reset your password.</p>
<p><a href="{{.ResetURL}}">Reset your password</a></p>
<p>This link expires in one hour. If you did not request a reset, you can ignore this email.</p>
</body></html>`

// TemplateManager is a concurrency-safe registry of parsed HTML templates.
type TemplateManager struct {
	templates map[string]*template.Template
	mutex     sync.RWMutex
}

// NewTemplateManager returns a manager preloaded with the built-in
// registration and password-reset templates.
func NewTemplateManager() *TemplateManager {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
	}

	// Built-ins cannot fail to parse; they are compile-time constants.
	_ = tm.AddTemplate(TemplateOTP, otpTemplate)
	_ = tm.AddTemplate(TemplatePasswordReset, passwordResetTemplate)

	return tm
}

func (tm *TemplateManager) Render(templateName string, data TemplateData) (string, error) {
	tm.mutex.RLock()
	tpl, exists := tm.templates[templateName]
	tm.mutex.RUnlock()

	if !exists {
		return "", fmt.Errorf("template not found: %s", templateName)
	}

	var buf strings.Builder
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

func (tm *TemplateManager) AddTemplate(name string, templateStr string) error {
	tpl, err := template.New(name).Parse(templateStr)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	tm.mutex.Lock()
	tm.templates[name] = tpl
	tm.mutex.Unlock()

	return nil
}
