// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-key-vault/internal/audit"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─── test helpers ────────────────────────────────────────────────────────────

type handlerMocks struct {
	vault    *mock.MockVaultService
	auth     *mock.MockAuthService
	flow     *mock.MockFlowService
	auditLog *audit.Log
}

func newTestRouter(t *testing.T) (*chi.Mux, handlerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mocks := handlerMocks{
		vault:    mock.NewMockVaultService(ctrl),
		auth:     mock.NewMockAuthService(ctrl),
		flow:     mock.NewMockFlowService(ctrl),
		auditLog: audit.NewLog(100),
	}

	services := &service.Services{
		VaultService: mocks.vault,
		AuthService:  mocks.auth,
		FlowService:  mocks.flow,
	}

	handler := NewHandler(services, mocks.auditLog, logger.Nop())
	return handler.Init(), mocks
}

// lastAuditEntry returns the newest entry in the handler's audit log.
func lastAuditEntry(t *testing.T, mocks handlerMocks) models.AuditEntry {
	t.Helper()

	entries := mocks.auditLog.Snapshot()
	require.NotEmpty(t, entries)
	return entries[len(entries)-1]
}

// authorize attaches a bearer token to req and arranges for the auth
// middleware to accept it.
func authorize(req *http.Request, mocks handlerMocks) {
	req.Header.Set("Authorization", "Bearer test-token")
	mocks.auth.EXPECT().
		ParseToken(gomock.Any(), "test-token").
		Return(models.Token{UserID: 1, ConnectionID: "conn-1"}, nil)
}

func doRequest(t *testing.T, router *chi.Mux, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeAPIError(t *testing.T, recorder *httptest.ResponseRecorder) models.APIError {
	t.Helper()

	var apiErr models.APIError
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&apiErr))
	return apiErr
}

// ─── router behaviour ────────────────────────────────────────────────────────

func TestRouter_UnsupportedMethodHidesRoute(t *testing.T) {
	router, _ := newTestRouter(t)

	// DELETE is not registered for /api/health; the route must not leak
	recorder := doRequest(t, router, httptest.NewRequest(http.MethodDelete, "/api/health", nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRouter_ProtectedRouteWithoutToken(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/secrets", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, models.ErrKindAuthentication, decodeAPIError(t, recorder).Kind)
}

func TestRouter_TraceIDHeaderIsSet(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.flow.EXPECT().Evaluate(gomock.Any()).Return(models.FlowStateRegisterOrLogin, nil)
	mocks.vault.EXPECT().Unlocked().Return(false)

	recorder := doRequest(t, router, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.NotEmpty(t, recorder.Header().Get("X-Trace-ID"))
}

func TestRouter_TraceIDHeaderIsEchoed(t *testing.T) {
	router, mocks := newTestRouter(t)
	mocks.flow.EXPECT().Evaluate(gomock.Any()).Return(models.FlowStateRegisterOrLogin, nil)
	mocks.vault.EXPECT().Unlocked().Return(false)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Trace-ID", "trace-from-client")

	recorder := doRequest(t, router, req)

	assert.Equal(t, "trace-from-client", recorder.Header().Get("X-Trace-ID"))
}
