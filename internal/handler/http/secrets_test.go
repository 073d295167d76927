package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_ListSecrets_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().Secrets(gomock.Any()).Return([]models.SecretRecord{
		{ID: "id-1", Name: "STRIPE_KEY", Service: "stripe"},
	}, nil)

	req := jsonRequest(http.MethodGet, "/api/secrets", "")
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var secrets []models.SecretRecord
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&secrets))
	require.Len(t, secrets, 1)
	assert.Equal(t, "STRIPE_KEY", secrets[0].Name)
}

func TestHandler_ListSecrets_VaultLocked(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().Secrets(gomock.Any()).Return(nil, service.ErrVaultLocked)

	req := jsonRequest(http.MethodGet, "/api/secrets", "")
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusLocked, recorder.Code)
	assert.Equal(t, models.ErrKindVaultLocked, decodeAPIError(t, recorder).Kind)
}

func TestHandler_CreateSecret_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().
		CreateSecret(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, secret models.SecretRecord) (models.SecretRecord, error) {
			secret.ID = "id-1"
			return secret, nil
		})

	body := `{"name":"STRIPE_KEY","service":"stripe","secret_value":"sk_live_x","environment":"production"}`
	req := jsonRequest(http.MethodPost, "/api/secrets", body)
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var created models.SecretRecord
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))
	assert.Equal(t, "id-1", created.ID)
	assert.Equal(t, models.EnvironmentProduction, created.Environment)
}

func TestHandler_CreateSecret_ValidationFailure(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().
		CreateSecret(gomock.Any(), gomock.Any()).
		Return(models.SecretRecord{}, service.ErrInvalidDataProvided)

	req := jsonRequest(http.MethodPost, "/api/secrets", `{"name":""}`)
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, models.ErrKindValidation, decodeAPIError(t, recorder).Kind)
}

func TestHandler_CreateSecret_MalformedBodyIsAudited(t *testing.T) {
	router, mocks := newTestRouter(t)

	req := jsonRequest(http.MethodPost, "/api/secrets", `{"name": unquoted}`)
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, models.ErrKindValidation, decodeAPIError(t, recorder).Kind)

	// the body never decoded, so no service could audit the rejection
	entry := lastAuditEntry(t, mocks)
	assert.Equal(t, models.AuditActionCreateSecret, entry.Action)
	assert.Equal(t, models.AuditResourceSecret, entry.ResourceType)
	assert.False(t, entry.Success)
	assert.NotEmpty(t, entry.ErrorMessage)
}

func TestHandler_UpdateSecret_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	newName := "STRIPE_KEY_V2"
	mocks.vault.EXPECT().
		UpdateSecret(gomock.Any(), "id-1", models.SecretUpdate{Name: &newName}).
		Return(models.SecretRecord{ID: "id-1", Name: newName}, nil)

	req := jsonRequest(http.MethodPut, "/api/secrets/id-1", `{"name":"STRIPE_KEY_V2"}`)
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var updated models.SecretRecord
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
	assert.Equal(t, "STRIPE_KEY_V2", updated.Name)
}

func TestHandler_UpdateSecret_NotFound(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().
		UpdateSecret(gomock.Any(), "ghost", gomock.Any()).
		Return(models.SecretRecord{}, service.ErrSecretNotFound)

	req := jsonRequest(http.MethodPut, "/api/secrets/ghost", `{"name":"X"}`)
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, models.ErrKindNotFound, decodeAPIError(t, recorder).Kind)
}

func TestHandler_DeleteSecret_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().DeleteSecret(gomock.Any(), "id-1").Return(nil)

	req := jsonRequest(http.MethodDelete, "/api/secrets/id-1", "")
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_SearchSecrets_PassesQuery(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().
		SearchSecrets(gomock.Any(), "stripe").
		Return([]models.SecretRecord{{ID: "id-1", Service: "stripe"}}, nil)

	req := jsonRequest(http.MethodGet, "/api/secrets/search?q=stripe", "")
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var found []models.SecretRecord
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&found))
	assert.Len(t, found, 1)
}

func TestHandler_RecordUsage_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().RecordUsage(gomock.Any(), "id-1").Return(nil)

	req := jsonRequest(http.MethodPost, "/api/secrets/id-1/usage", "")
	authorize(req, mocks)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
}
