package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/go-resty/resty/v2"
)

// BridgeClientConfig configures the HTTP implementation of [BridgeAdapter].
type BridgeClientConfig struct {
	// BaseURL is the address of the local bridge, e.g. "http://localhost:8123".
	BaseURL string

	// Timeout bounds every request issued by the adapter.
	Timeout time.Duration
}

type httpBridgeAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBridgeAdapter constructs an HTTP/REST implementation of
// [BridgeAdapter]. It normalises and validates cfg.BaseURL and configures
// the underlying resty client with the resolved base URL and request
// timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid
// URL.
func NewHTTPBridgeAdapter(cfg BridgeClientConfig, logger *logger.Logger) (BridgeAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid bridge address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpBridgeAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBridgeAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBridgeAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpBridgeAdapter) Health(ctx context.Context) (models.HealthResponse, error) {
	var health models.HealthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&health).
		Get("/api/health")
	if err != nil {
		return models.HealthResponse{}, fmt.Errorf("health request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.HealthResponse{}, err
	}

	return health, nil
}

func (h *httpBridgeAdapter) State(ctx context.Context) (models.FlowState, error) {
	var state models.StateResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&state).
		Get("/api/auth/state")
	if err != nil {
		return models.FlowStateLoading, fmt.Errorf("state request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FlowStateLoading, err
	}

	return models.FlowState(state.State), nil
}

func (h *httpBridgeAdapter) Register(ctx context.Context, login, credential string) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/register", login, credential)
}

func (h *httpBridgeAdapter) Login(ctx context.Context, login, credential string) (models.Session, error) {
	return h.authenticate(ctx, "/api/auth/login", login, credential)
}

// authenticate posts credentials to path, stores the issued token, and
// returns the registered session. Register and Login share this shape.
func (h *httpBridgeAdapter) authenticate(ctx context.Context, path, login, credential string) (models.Session, error) {
	var response models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.CredentialRequest{Login: login, Credential: credential}).
		SetResult(&response).
		Post(path)
	if err != nil {
		return models.Session{}, fmt.Errorf("auth request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	h.SetToken(response.Token)
	return response.Session, nil
}

func (h *httpBridgeAdapter) SetMasterPassword(ctx context.Context, password string) (models.FlowState, error) {
	return h.postPassword(ctx, "/api/vault/master-password", password)
}

func (h *httpBridgeAdapter) Unlock(ctx context.Context, password string) (models.FlowState, error) {
	return h.postPassword(ctx, "/api/vault/unlock", password)
}

func (h *httpBridgeAdapter) Lock(ctx context.Context) (models.FlowState, error) {
	var state models.StateResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&state).
		Post("/api/vault/lock")
	if err != nil {
		return models.FlowStateLoading, fmt.Errorf("lock request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FlowStateLoading, err
	}

	// locking dropped every session server-side; the held token is dead
	h.SetToken("")

	return models.FlowState(state.State), nil
}

func (h *httpBridgeAdapter) postPassword(ctx context.Context, path, password string) (models.FlowState, error) {
	var state models.StateResponse

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PasswordRequest{Password: password}).
		SetResult(&state).
		Post(path)
	if err != nil {
		return models.FlowStateLoading, fmt.Errorf("password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FlowStateLoading, err
	}

	return models.FlowState(state.State), nil
}

func (h *httpBridgeAdapter) Secrets(ctx context.Context) ([]models.SecretRecord, error) {
	resp, err := h.authedRequest(ctx).Get("/api/secrets")
	if err != nil {
		return nil, fmt.Errorf("list secrets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var secrets []models.SecretRecord
	if err = json.Unmarshal(resp.Body(), &secrets); err != nil {
		return nil, fmt.Errorf("decode secrets response: %w", err)
	}

	return secrets, nil
}

func (h *httpBridgeAdapter) CreateSecret(ctx context.Context, secret models.SecretRecord) (models.SecretRecord, error) {
	var created models.SecretRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(secret).
		SetResult(&created).
		Post("/api/secrets")
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("create secret request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecretRecord{}, err
	}

	return created, nil
}

func (h *httpBridgeAdapter) UpdateSecret(ctx context.Context, id string, update models.SecretUpdate) (models.SecretRecord, error) {
	var updated models.SecretRecord

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&updated).
		Put("/api/secrets/" + url.PathEscape(id))
	if err != nil {
		return models.SecretRecord{}, fmt.Errorf("update secret request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SecretRecord{}, err
	}

	return updated, nil
}

func (h *httpBridgeAdapter) DeleteSecret(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/secrets/" + url.PathEscape(id))
	if err != nil {
		return fmt.Errorf("delete secret request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBridgeAdapter) SearchSecrets(ctx context.Context, query string) ([]models.SecretRecord, error) {
	resp, err := h.authedRequest(ctx).
		SetQueryParam("q", query).
		Get("/api/secrets/search")
	if err != nil {
		return nil, fmt.Errorf("search secrets request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var found []models.SecretRecord
	if err = json.Unmarshal(resp.Body(), &found); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	return found, nil
}

func (h *httpBridgeAdapter) RecordUsage(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).Post("/api/secrets/" + url.PathEscape(id) + "/usage")
	if err != nil {
		return fmt.Errorf("record usage request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBridgeAdapter) ExportAuditLog(ctx context.Context) ([]models.AuditEntry, error) {
	resp, err := h.authedRequest(ctx).Get("/api/audit")
	if err != nil {
		return nil, fmt.Errorf("export audit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var entries []models.AuditEntry
	if err = json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("decode audit response: %w", err)
	}

	return entries, nil
}

func (h *httpBridgeAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
