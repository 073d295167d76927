package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing token sign key or zero KDF iterations).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid bridge server settings
	// (for example, missing HTTP address or zero request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuditConfigs indicates invalid audit log settings
	// (for example, non-positive capacity).
	ErrInvalidAuditConfigs = errors.New("invalid audit configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero session sweep interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
