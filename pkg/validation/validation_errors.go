package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldMessages maps struct field names to the message shown when the field fails any rule
var FieldMessages = map[string]string{
	"Name":    "Name must be at least 2 characters long",
	"Email":   "Please provide a valid email address",
	"Subject": "Subject must be at least 3 characters long",
	"Message": "Message must be at least 10 characters long",
}

// New returns a validator that reports field errors by their Go field names
func New() *validator.Validate {
	return validator.New()
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages.
// The validator reports at most one failing tag per field, in struct field order,
// so the result lists every invalid field exactly once.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// JoinMessages concatenates messages the way the contact endpoint reports them
func JoinMessages(messages []string) string {
	return strings.Join(messages, ", ")
}

func formatSingleError(e validator.FieldError) string {
	if msg, ok := FieldMessages[e.Field()]; ok {
		return msg
	}

	label := formatCamelCase(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", label, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", label, e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
