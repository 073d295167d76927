package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName          = errors.New("name is required")
	ErrEmptyService       = errors.New("service is required")
	ErrEmptySecretValue   = errors.New("secret value is required")
	ErrInvalidEnvironment = errors.New("invalid environment")
	ErrNoFieldsToUpdate   = errors.New("at least one field must be provided for update")
)
