package validator

import "errors"

var (
	// ErrUnknownRule is returned by Build for a rule name missing from the catalog.
	ErrUnknownRule = errors.New("unknown rule")

	// ErrInvalidParam is returned when a rule parameter has the wrong shape or value.
	ErrInvalidParam = errors.New("invalid rule parameter")
)
