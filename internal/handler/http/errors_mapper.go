package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrAuthenticationFailed:    http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrVaultLocked:             http.StatusLocked,
	service.ErrSecretNotFound:          http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	store.ErrAccountAlreadyExists:     http.StatusConflict,
	store.ErrMasterPasswordAlreadySet: http.StatusConflict,
	store.ErrNoAccount:                http.StatusNotFound,
	store.ErrNoMasterRecord:           http.StatusNotFound,
	store.ErrNoVaultBlob:              http.StatusNotFound,
	store.ErrBuildingSQLQuery:         http.StatusInternalServerError,
	store.ErrExecutingQuery:           http.StatusInternalServerError,
	store.ErrBeginningTransaction:     http.StatusInternalServerError,
	store.ErrCommitingTransaction:     http.StatusInternalServerError,
	store.ErrExecutingStatement:       http.StatusInternalServerError,
	store.ErrScanningRow:              http.StatusInternalServerError,
}

var errorKindMap = map[error]string{
	service.ErrInvalidDataProvided:     models.ErrKindValidation,
	service.ErrAuthenticationFailed:    models.ErrKindAuthentication,
	service.ErrTokenIsExpiredOrInvalid: models.ErrKindAuthentication,
	service.ErrVaultLocked:             models.ErrKindVaultLocked,
	service.ErrSecretNotFound:          models.ErrKindNotFound,
	service.ErrTokenCreationFailed:     models.ErrKindInternal,

	ErrEmptyAuthorizationHeader:   models.ErrKindAuthentication,
	ErrInvalidAuthorizationHeader: models.ErrKindAuthentication,
	ErrEmptyToken:                 models.ErrKindAuthentication,

	store.ErrAccountAlreadyExists:     models.ErrKindAlreadyExists,
	store.ErrMasterPasswordAlreadySet: models.ErrKindAlreadySet,
	store.ErrNoAccount:                models.ErrKindNotFound,
	store.ErrNoMasterRecord:           models.ErrKindNotFound,
	store.ErrNoVaultBlob:              models.ErrKindNotFound,
	store.ErrBuildingSQLQuery:         models.ErrKindStorage,
	store.ErrExecutingQuery:           models.ErrKindStorage,
	store.ErrBeginningTransaction:     models.ErrKindStorage,
	store.ErrCommitingTransaction:     models.ErrKindStorage,
	store.ErrExecutingStatement:       models.ErrKindStorage,
	store.ErrScanningRow:              models.ErrKindStorage,
}

// apiErrorFromError reduces an internal error chain to the structured
// {kind, message} shape clients see. For server-side failures (5xx) the
// message is replaced with a generic one: storage and crypto detail never
// crosses the bridge boundary.
func apiErrorFromError(err error) (models.APIError, int) {
	for target, status := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}

		message := target.Error()
		if status >= http.StatusInternalServerError {
			message = "internal error"
		}

		return models.APIError{Kind: errorKindMap[target], Message: message}, status
	}

	return models.APIError{Kind: models.ErrKindInternal, Message: "internal error"}, http.StatusInternalServerError
}

// writeError logs the full error chain server-side and writes only the
// mapped [models.APIError] to the response.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, status := apiErrorFromError(err)

	logger.FromRequest(r).Err(err).
		Str("kind", apiErr.Kind).
		Int("status", status).
		Send()

	utils.WriteJSON(w, apiErr, status)
}
