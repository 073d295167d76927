package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Register_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().
		CreateAccount(gomock.Any(), "alice", "s3cret").
		Return(models.UserAccount{ID: 1, Login: "alice"}, nil)
	mocks.auth.EXPECT().
		Login(gomock.Any(), "alice", "s3cret").
		Return(
			models.Session{ConnectionID: "conn-1", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)},
			models.Token{SignedString: "signed-token"},
			nil,
		)

	req := jsonRequest(http.MethodPost, "/api/auth/register", `{"login":"alice","credential":"s3cret"}`)
	recorder := doRequest(t, router, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "Bearer signed-token", recorder.Header().Get("Authorization"))

	var response models.LoginResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "signed-token", response.Token)
	assert.Equal(t, "conn-1", response.Session.ConnectionID)
}

func TestHandler_Register_AccountAlreadyExists(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.vault.EXPECT().
		CreateAccount(gomock.Any(), "alice", "s3cret").
		Return(models.UserAccount{}, store.ErrAccountAlreadyExists)

	req := jsonRequest(http.MethodPost, "/api/auth/register", `{"login":"alice","credential":"s3cret"}`)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, models.ErrKindAlreadyExists, decodeAPIError(t, recorder).Kind)
}

func TestHandler_Register_MalformedJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := jsonRequest(http.MethodPost, "/api/auth/register", `{"login":`)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, models.ErrKindValidation, decodeAPIError(t, recorder).Kind)
}

func TestHandler_Login_Success(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), "alice", "s3cret").
		Return(
			models.Session{ConnectionID: "conn-1", UserID: 1},
			models.Token{SignedString: "signed-token"},
			nil,
		)

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"login":"alice","credential":"s3cret"}`)
	recorder := doRequest(t, router, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Bearer signed-token", recorder.Header().Get("Authorization"))
}

func TestHandler_Login_UniformFailure(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.auth.EXPECT().
		Login(gomock.Any(), "alice", "wrong").
		Return(models.Session{}, models.Token{}, service.ErrAuthenticationFailed)

	req := jsonRequest(http.MethodPost, "/api/auth/login", `{"login":"alice","credential":"wrong"}`)
	recorder := doRequest(t, router, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, models.ErrKindAuthentication, decodeAPIError(t, recorder).Kind)
}

func TestHandler_State_ReportsFlowState(t *testing.T) {
	router, mocks := newTestRouter(t)

	mocks.flow.EXPECT().Evaluate(gomock.Any()).Return(models.FlowStateUserLogin, nil)

	recorder := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/auth/state", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.StateResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, string(models.FlowStateUserLogin), response.State)
}
