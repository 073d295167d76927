package adapter

import "errors"

// Sentinel errors mapped from the bridge's structured failures. Match with
// [errors.Is]; the wrapped chain carries the server-provided message.
var (
	ErrValidation    = errors.New("invalid request")
	ErrUnauthorized  = errors.New("client unauthorized")
	ErrVaultLocked   = errors.New("vault is locked")
	ErrAlreadyExists = errors.New("resource already exists")
	ErrAlreadySet    = errors.New("already set")
	ErrNotFound      = errors.New("resource not found")
	ErrBridgeFailure = errors.New("bridge internal failure")
)
