package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
)

func TestAPIErrorFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   string
		wantStatus int
	}{
		{
			name:       "validation",
			err:        fmt.Errorf("%w: name is empty", service.ErrInvalidDataProvided),
			wantKind:   models.ErrKindValidation,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "authentication",
			err:        service.ErrAuthenticationFailed,
			wantKind:   models.ErrKindAuthentication,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "vault locked",
			err:        service.ErrVaultLocked,
			wantKind:   models.ErrKindVaultLocked,
			wantStatus: http.StatusLocked,
		},
		{
			name:       "secret not found",
			err:        service.ErrSecretNotFound,
			wantKind:   models.ErrKindNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "account conflict",
			err:        fmt.Errorf("registration: %w", store.ErrAccountAlreadyExists),
			wantKind:   models.ErrKindAlreadyExists,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unknown error",
			err:        assert.AnError,
			wantKind:   models.ErrKindInternal,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr, status := apiErrorFromError(tt.err)

			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.wantStatus, status)
		})
	}
}

func TestAPIErrorFromError_StorageDetailNeverLeaks(t *testing.T) {
	err := fmt.Errorf("%w: SELECT * FROM vault_blob", store.ErrExecutingQuery)

	apiErr, status := apiErrorFromError(err)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, models.ErrKindStorage, apiErr.Kind)
	assert.Equal(t, "internal error", apiErr.Message)
	assert.NotContains(t, apiErr.Message, "SELECT")
}
