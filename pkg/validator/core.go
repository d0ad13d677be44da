package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single rule that a value did not satisfy.
type ValidationError struct {
	Rule    string
	Message string
	Params  map[string]any
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Rule, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(rule string) bool {
	for _, err := range ve {
		if err.Rule == rule {
			return true
		}
	}
	return false
}

// Rules returns the names of the failed rules in evaluation order.
func (ve ValidationErrors) Rules() []string {
	rules := make([]string, 0, len(ve))
	for _, err := range ve {
		rules = append(rules, err.Rule)
	}
	return rules
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a single named predicate over an arbitrary value.
// Check must be pure: it is called on every assignment and every guarded call.
type Rule struct {
	Name    string
	Check   func(value any) bool
	Message string
	Params  map[string]any
}

// Failure converts the rule into the error describing its violation.
func (r Rule) Failure() ValidationError {
	return ValidationError{
		Rule:    r.Name,
		Message: r.Message,
		Params:  r.Params,
	}
}

// String renders the rule with its parameters, e.g. "gt(min=0)".
func (r Rule) String() string {
	if len(r.Params) == 0 {
		return r.Name
	}
	keys := sortedKeys(r.Params)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, r.Params[k]))
	}
	return r.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Apply evaluates every rule against value and returns all violations.
func Apply(value any, rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check(value) {
			errors = append(errors, rule.Failure())
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// First returns the first rule that value does not satisfy.
// Rules after the first failure are not evaluated.
func First(value any, rules ...Rule) (Rule, bool) {
	for _, rule := range rules {
		if !rule.Check(value) {
			return rule, true
		}
	}
	return Rule{}, false
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
