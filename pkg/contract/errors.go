package contract

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrTypeMismatch is matched by every *TypeMismatch through errors.Is.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrUnknownRequirement is returned when a requirement name is not registered.
	ErrUnknownRequirement = errors.New("unknown requirement")

	// ErrDuplicateRequirement is returned when registering a name that is already taken.
	ErrDuplicateRequirement = errors.New("requirement already registered")

	// ErrInvalidRequirement is returned for nil requirements or empty names.
	ErrInvalidRequirement = errors.New("invalid requirement")

	// ErrRegistrySealed is returned when registering after Seal.
	ErrRegistrySealed = errors.New("registry is sealed")

	// ErrInvalidSeed is returned when a seed document cannot be applied.
	ErrInvalidSeed = errors.New("invalid seed")
)

// TypeMismatch reports a value that does not satisfy a requirement.
// Field holds the field or parameter name the value was destined for.
// Rule and Reason are set when the type matched but a composed rule failed.
type TypeMismatch struct {
	Field    string
	Expected string
	Actual   string
	Value    any
	Rule     string
	Reason   string
}

func (e *TypeMismatch) Error() string {
	msg := fmt.Sprintf("type mismatch for %q: expected %s, got %s", e.Field, e.Expected, e.Actual)
	if e.Rule != "" {
		msg += fmt.Sprintf(" (%s: %s)", e.Rule, e.Reason)
	}
	return msg
}

func (e *TypeMismatch) Is(target error) bool {
	return target == ErrTypeMismatch
}

// AsTypeMismatch extracts a *TypeMismatch from err.
func AsTypeMismatch(err error) (*TypeMismatch, bool) {
	var tm *TypeMismatch
	if errors.As(err, &tm) {
		return tm, true
	}
	return nil, false
}

func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// TypeName returns the dynamic Go type of value, or "nil" for untyped nil.
func TypeName(value any) string {
	if value == nil {
		return "nil"
	}
	return reflect.TypeOf(value).String()
}
