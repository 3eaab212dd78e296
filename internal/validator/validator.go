package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationError carries a field -> message map for the client.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	var errMsgs []string
	for field, msg := range e.Errors {
		errMsgs = append(errMsgs, fmt.Sprintf("field '%s': %s", field, msg))
	}
	return "Validation failed: " + strings.Join(errMsgs, "; ")
}

// Validator wraps go-playground/validator.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with JSON tag names and the custom rules
// registered.
func New() *Validator {
	v := validator.New()

	// Request DTOs carry their rules in `binding` tags so Gin enforces them
	// at bind time; this wrapper reads the same tags for direct validation.
	v.SetTagName("binding")

	// Report field names as they appear in the JSON payload, not as Go
	// struct fields.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	// Gin runs its own validator instance at bind time; the custom tags
	// must exist there too or binding panics on first use.
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerCustomRules(engine)
	}

	return &Validator{
		validate: v,
	}
}

// Validate runs struct validation and converts failures into a
// *ValidationError.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string)
	for _, fe := range validationErrors {
		customErrors[fe.Field()] = v.getErrorMessage(fe)
	}

	return &ValidationError{Errors: customErrors}
}

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "len":
		return fmt.Sprintf("Must be exactly %s items/characters long", fe.Param())
	case "url":
		return "Must be a valid URL"
	case "numeric":
		return "Must contain only digits"
	case "is-account-status":
		return "Invalid account status"
	case "is-pronouns":
		return "Must look like 'she/her', 'he/him' or 'they/them'"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
