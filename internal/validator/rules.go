package validator

import (
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"

	"practicehub_backend/internal/models"
)

// registerCustomRules wires the domain validation tags into the validator
// instance.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-account-status", validateAccountStatus)
	mustRegister("is-pronouns", validatePronouns)
}

var pronounsPattern = regexp.MustCompile(`^[A-Za-z]+/[A-Za-z]+$`)

func validatePronouns(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return pronounsPattern.MatchString(value)
}

func validateAccountStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // 'required' handles empties
	}

	switch models.AccountStatus(value) {
	case models.StatusOnboardingStep1, models.StatusOnboardingStep2,
		models.StatusOnboardingStep3, models.StatusVerified, models.StatusDisabled:
		return true
	default:
		return false
	}
}
