package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels used in messages
var FieldLabels = map[string]string{
	// Auth
	"Email":    "Email",
	"Password": "Password",
	"Role":     "Role",

	// Candidate
	"FirstName":    "First name",
	"LastName":     "Last name",
	"Phone":        "Phone",
	"City":         "City",
	"Profession":   "Profession",
	"Bio":          "Bio",
	"Skills":       "Skills",
	"PortfolioURL": "Portfolio URL",

	// Company
	"Name":        "Company name",
	"Description": "Description",
	"Website":     "Website",

	// Job
	"Title":            "Title",
	"Category":         "Category",
	"Salary":           "Salary",
	"Experience":       "Experience",
	"Requirements":     "Requirements",
	"Responsibilities": "Responsibilities",
	"IsActive":         "Active flag",

	// Application
	"Status":      "Status",
	"CoverLetter": "Cover letter",
}

// FormatValidationErrors converts validator.ValidationErrors to readable messages.
// Any other error (malformed JSON, wrong type) yields a single generic message.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{describeBindError(err)}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// FirstMessage returns the message for the first failing field.
func FirstMessage(err error) string {
	messages := FormatValidationErrors(err)
	if len(messages) == 0 {
		return "Invalid request"
	}
	return messages[0]
}

func describeBindError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		return "Malformed JSON body"
	case errors.As(err, &typeErr):
		return fmt.Sprintf("%s has an invalid type", getFieldLabel(typeErr.Field))
	case err != nil && err.Error() == "EOF":
		return "Request body is required"
	default:
		return "Invalid request"
	}
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s item(s)", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at most %s item(s)", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(strings.Fields(param), ", "))
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "valid_name":
		return fmt.Sprintf("%s may only contain letters, spaces and . ' -", label)
	case "valid_phone":
		return fmt.Sprintf("%s must be a valid phone number (7-15 digits, optional +)", label)
	case "no_emoji":
		return fmt.Sprintf("%s must not contain emoji or symbols", label)
	case "dive":
		return fmt.Sprintf("%s contains an invalid item", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
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
