package record

import "errors"

var (
	// ErrInvalidClass wraps every error reported while defining a class.
	ErrInvalidClass = errors.New("invalid class definition")

	ErrMissingArgument  = errors.New("missing constructor argument")
	ErrTooManyArguments = errors.New("too many constructor arguments")

	// ErrUnknownField is returned for names that are not in the class field table.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnsetField is returned by Get for a declared field that holds no value.
	ErrUnsetField = errors.New("field is not set")

	ErrUnknownMethod = errors.New("unknown method")
	ErrUnknownConst  = errors.New("unknown constant")

	// ErrFrozen is returned when assigning to an object of a frozen class.
	ErrFrozen = errors.New("object is frozen")

	ErrNotOrderable = errors.New("objects are not orderable")
	ErrNotHashable  = errors.New("object is not hashable")
)
