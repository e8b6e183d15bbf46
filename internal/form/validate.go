// Package form holds the create/edit flow shared by the management views.
package form

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError is the single client-side message shown for a rejected form.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validator checks field presence and format only.
type Validator struct {
	v *validator.Validate
}

// NewValidator registers the "mobile" tag (exactly 10 digits) and reports json field names.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	// RegisterValidation only fails for empty tags or reserved names
	_ = v.RegisterValidation("mobile", validateMobile)
	return &Validator{v: v}
}

// Check returns the first failing field as a *ValidationError, or nil.
func (fv *Validator) Check(item any) error {
	err := fv.v.Struct(item)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ValidationError{Message: err.Error()}
	}
	first := verrs[0]
	return &ValidationError{Field: first.Field(), Message: message(first)}
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "contains":
		if fe.Param() == "@" {
			return fmt.Sprintf("%s must be a valid email address", field)
		}
		return fmt.Sprintf("%s must contain %q", field, fe.Param())
	case "mobile":
		return fmt.Sprintf("%s must be exactly 10 digits", field)
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid", field)
}

func validateMobile(fl validator.FieldLevel) bool {
	return IsMobile(fl.Field().String())
}

// IsMobile reports whether s is exactly ten ASCII digits.
func IsMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
