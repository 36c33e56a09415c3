// Package validation provides per-field form validation with accumulated
// errors. Usage:
//
//	errs := validation.New().
//		Validate("title", title, validation.Required("Title", 255)).
//		Validate("publicationYear", year, validation.IntRange("Publication year", 1, 9999)).
//		Errors()
package validation

import (
	"fmt"
	"strconv"
	"strings"
)

// FieldValidator checks one value and returns an error message, or "" when
// valid.
type FieldValidator func(value string) string

// Validator accumulates field errors keyed by field name. The first error
// per field wins.
type Validator struct {
	errs map[string]string
}

// New creates an empty validator.
func New() *Validator {
	return &Validator{errs: make(map[string]string)}
}

// Validate runs the validators for one field, recording the first failure.
func (v *Validator) Validate(field, value string, validators ...FieldValidator) *Validator {
	if _, seen := v.errs[field]; seen {
		return v
	}
	for _, fv := range validators {
		if msg := fv(value); msg != "" {
			v.errs[field] = msg
			break
		}
	}
	return v
}

// Valid reports whether no field failed.
func (v *Validator) Valid() bool { return len(v.errs) == 0 }

// Errors returns the accumulated field errors; nil when everything passed.
func (v *Validator) Errors() map[string]string {
	if len(v.errs) == 0 {
		return nil
	}
	return v.errs
}

// Required rejects empty values and values longer than maxLen.
func Required(label string, maxLen int) FieldValidator {
	return func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return fmt.Sprintf("%s is required", label)
		}
		if maxLen > 0 && len(trimmed) > maxLen {
			return fmt.Sprintf("%s must be at most %d characters", label, maxLen)
		}
		return ""
	}
}

// IntRange requires an integer between min and max inclusive.
func IntRange(label string, min, max int) FieldValidator {
	return func(value string) string {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Sprintf("%s must be a number", label)
		}
		if n < min || n > max {
			return fmt.Sprintf("%s must be between %d and %d", label, min, max)
		}
		return ""
	}
}

// OneOf requires the value to match one of the allowed options exactly.
func OneOf(label string, options ...string) FieldValidator {
	return func(value string) string {
		for _, opt := range options {
			if value == opt {
				return ""
			}
		}
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(options, ", "))
	}
}

// Date requires a YYYY-MM-DD value. The format check lives here; semantic
// checks (ordering) stay with the caller.
func Date(label string) FieldValidator {
	return func(value string) string {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return fmt.Sprintf("%s is required", label)
		}
		if _, err := parseISODate(trimmed); err != nil {
			return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", label)
		}
		return ""
	}
}

// Optional short-circuits the remaining validators when the value is empty.
func Optional(validators ...FieldValidator) FieldValidator {
	return func(value string) string {
		if strings.TrimSpace(value) == "" {
			return ""
		}
		for _, fv := range validators {
			if msg := fv(value); msg != "" {
				return msg
			}
		}
		return ""
	}
}
