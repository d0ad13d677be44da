package config

import "errors"

var (
	// ErrParsingConfig is returned when the environment cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrEnvFile is returned when an explicitly requested .env file cannot be loaded.
	ErrEnvFile = errors.New("failed to load env file")

	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
