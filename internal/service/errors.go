package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrAuthenticationFailed is the uniform failure for login and unlock.
	// It deliberately carries no detail: callers must not be able to tell
	// a wrong password from a missing account or a tampered blob.
	ErrAuthenticationFailed = errors.New("authentication failed")

	ErrVaultLocked    = errors.New("vault is locked")
	ErrSecretNotFound = errors.New("secret not found")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
