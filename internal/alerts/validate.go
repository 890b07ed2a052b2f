package alerts

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	errRequired = "This field is required"
	errEmail    = "Please enter a valid email address"
	errNumber   = "Please enter a number"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the basic shape of an email address.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// validateField returns the error message for a trimmed value, or "".
func validateField(typ FieldType, required bool, value string) string {
	switch {
	case required && value == "":
		return errRequired
	case value == "":
		return ""
	case typ == FieldEmail && !ValidEmail(value):
		return errEmail
	case typ == FieldNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return errNumber
		}
	}
	return ""
}

// fieldName returns the field's name, or input_<index> when it has none.
func fieldName(f FormField, index int) string {
	if name := strings.TrimSpace(f.Name); name != "" {
		return name
	}
	return "input_" + strconv.Itoa(index)
}
