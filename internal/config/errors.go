package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidYousignConfigs indicates missing credentials or unusable
	// API base URLs.
	ErrInvalidYousignConfigs = errors.New("invalid yousign configuration")
	// ErrInvalidStorageConfigs indicates invalid binary storage settings
	// (for example, an S3 bucket without a region).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid trigger server settings
	// (for example, a missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidNodeConfigs indicates invalid command line host settings
	// (for example, a missing manifest).
	ErrInvalidNodeConfigs = errors.New("invalid node configuration")
)
