package guard

import "errors"

var (
	// ErrInvalidSignature is returned by Wrap when the annotations do not fit the function.
	ErrInvalidSignature = errors.New("invalid guarded signature")

	// ErrArgument is returned when call arguments cannot be bound to parameters.
	ErrArgument = errors.New("invalid arguments")
)
