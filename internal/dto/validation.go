package dto

import (
	"errors"
	"fmt"

	"github.com/SscSPs/cash_dashboard/internal/utils/cashposition"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the custom binding tags used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return v.RegisterValidation("reportdate", func(fl validator.FieldLevel) bool {
		return cashposition.IsReportDate(fl.Field().String())
	})
}

var fieldLabels = map[string]string{
	"FirstName":       "First name",
	"LastName":        "Last name",
	"Email":           "Email",
	"Password":        "Password",
	"ConfirmPassword": "Password confirmation",
	"Name":            "Name",
	"Category":        "Category",
	"Date":            "date",
}

func fieldLabel(e validator.FieldError) string {
	if label, ok := fieldLabels[e.Field()]; ok {
		return label
	}
	return e.Field()
}

// ValidationErrorToText turns a binding failure into a message a user can act on.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldLabel(e))
	case "email":
		return "Please enter a valid email address"
	case "min":
		if e.Field() == "Password" {
			return fmt.Sprintf("Password must be at least %s characters long", e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", fieldLabel(e), e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fieldLabel(e), e.Param())
	case "eqfield":
		return "Passwords do not match"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldLabel(e), e.Param())
	case "reportdate":
		return "Invalid date format. Use YYYY-MM-DD (e.g., 2026-02-13)"
	}
	return fmt.Sprintf("%s is not valid", fieldLabel(e))
}

// BindingErrorMessages lists one message per failed field, or the raw error
// text when err did not come from the validator.
func BindingErrorMessages(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, ValidationErrorToText(e))
	}
	return messages
}
