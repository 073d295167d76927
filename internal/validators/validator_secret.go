package validators

import (
	"context"

	"github.com/MKhiriev/go-key-vault/models"
)

const (
	FieldName        = "name"
	FieldService     = "service"
	FieldSecretValue = "secret_value"
	FieldEnvironment = "environment"
)

type SecretValidator struct {
}

func NewSecretValidator() Validator {
	return &SecretValidator{}
}

func (v *SecretValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SecretRecord:
		return v.validateSecretRecord(ctx, value, fields...)
	case *models.SecretRecord:
		return v.validateSecretRecord(ctx, *value, fields...)

	case models.SecretUpdate:
		return v.validateSecretUpdate(ctx, value, fields...)
	case *models.SecretUpdate:
		return v.validateSecretUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *SecretValidator) validateSecretRecord(ctx context.Context, secret models.SecretRecord, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldService, FieldSecretValue, FieldEnvironment}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if secret.Name == "" {
				return ErrEmptyName
			}
		case FieldService:
			if secret.Service == "" {
				return ErrEmptyService
			}
		case FieldSecretValue:
			if secret.SecretValue == "" {
				return ErrEmptySecretValue
			}
		case FieldEnvironment:
			if !secret.Environment.Valid() {
				return ErrInvalidEnvironment
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SecretValidator) validateSecretUpdate(ctx context.Context, update models.SecretUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldService, FieldSecretValue, FieldEnvironment}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if update.Name != nil && *update.Name == "" {
				return ErrEmptyName
			}
		case FieldService:
			if update.Service != nil && *update.Service == "" {
				return ErrEmptyService
			}
		case FieldSecretValue:
			if update.SecretValue != nil && *update.SecretValue == "" {
				return ErrEmptySecretValue
			}
		case FieldEnvironment:
			if update.Environment != nil && !update.Environment.Valid() {
				return ErrInvalidEnvironment
			}
		default:
			return ErrUnknownField
		}
	}

	if update.Name == nil && update.Service == nil && update.SecretValue == nil &&
		update.Environment == nil && update.ProjectID == nil && update.Scopes == nil &&
		update.Tags == nil && update.IsActive == nil && update.ExpiresAt == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}
