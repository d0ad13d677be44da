package invis

import "errors"

var (
	// ErrSeedNotFound is returned when the seed file is required but missing.
	ErrSeedNotFound = errors.New("seed file not found")

	ErrInvalidConfig = errors.New("invalid invis configuration")
)
