package config

import "errors"

// Validation errors returned by [Load] when settings are out of range.
var (
	// ErrInvalidLengthConfigs indicates a minimum length below 1.
	ErrInvalidLengthConfigs = errors.New("invalid length configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
