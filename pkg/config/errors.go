package config

import "errors"

var (
	// ErrInvalidYAML indicates reflector.yaml parsing failed
	ErrInvalidYAML = errors.New("invalid YAML syntax")

	// ErrMissingRequiredField indicates a required setting is missing
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidValue indicates a setting has an invalid value
	ErrInvalidValue = errors.New("invalid field value")
)
