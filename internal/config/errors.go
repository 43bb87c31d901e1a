package config

import "errors"

// Validation errors returned when the merged configuration is incomplete or
// invalid.
var (
	// ErrMissingCredential indicates that a required key is absent from every
	// source. The wrapping error names the key.
	ErrMissingCredential = errors.New("missing credential")
	// ErrInvalidAdapterConfigs indicates invalid REST settings
	// (for example, a malformed endpoint or a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidThumbnailConfigs indicates an unknown page source or an empty
	// converter binary.
	ErrInvalidThumbnailConfigs = errors.New("invalid thumbnail configuration")
)
