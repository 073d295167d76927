package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/audit"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// authService is the concrete implementation of AuthService.
//
// It verifies the account credential against the stored adaptive hash and
// maintains the in-memory session registry. Sessions carry no cryptographic
// material; holding a valid token never implies vault access. The registry
// lives only in process memory, so a daemon restart invalidates every
// session.
type authService struct {
	repository store.VaultRepository
	keychain   crypto.KeyChainService
	auditLog   *audit.Log
	ids        *utils.UUIDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify session JWTs.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued session remains valid.
	tokenDuration time.Duration

	logger *logger.Logger

	// mu guards sessions, keyed by ConnectionID.
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewAuthService constructs an AuthService wired to the given repository and
// keychain, populated with token parameters from cfg.
func NewAuthService(repository store.VaultRepository, keychain crypto.KeyChainService, auditLog *audit.Log, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		repository:    repository,
		keychain:      keychain,
		auditLog:      auditLog,
		ids:           utils.NewUUIDGenerator(),
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
		sessions:      make(map[string]models.Session),
	}
}

// Login verifies the account credential and, on success, registers a new
// session and issues a JWT whose "jti" claim carries the session's
// ConnectionID.
//
// Every failure past input validation is reported as
// ErrAuthenticationFailed: a missing account, an unknown login, and a wrong
// credential are indistinguishable to the caller.
func (a *authService) Login(ctx context.Context, login, credential string) (models.Session, models.Token, error) {
	log := logger.FromContext(ctx)

	if login == "" || credential == "" {
		log.Error().Str("func", "*authService.Login").Msg("empty login or credential")
		a.audit(models.AuditActionLogin, "", ErrInvalidDataProvided)
		return models.Session{}, models.Token{}, ErrInvalidDataProvided
	}

	account, err := a.repository.GetAccount(ctx)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("account lookup failed")
		a.audit(models.AuditActionLogin, login, ErrAuthenticationFailed)
		return models.Session{}, models.Token{}, ErrAuthenticationFailed
	}

	if account.Login != login || !a.keychain.VerifyPassword(credential, account.CredentialHash) {
		log.Error().Str("func", "*authService.Login").Str("login", login).Msg("credential verification failed")
		a.audit(models.AuditActionLogin, login, ErrAuthenticationFailed)
		return models.Session{}, models.Token{}, ErrAuthenticationFailed
	}

	now := time.Now()
	session := models.Session{
		ConnectionID: a.ids.Generate(),
		UserID:       account.ID,
		IssuedAt:     now,
		ExpiresAt:    now.Add(a.tokenDuration),
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, account.ID, session.ConnectionID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token creation failed")
		a.audit(models.AuditActionLogin, login, ErrTokenCreationFailed)
		return models.Session{}, models.Token{}, ErrTokenCreationFailed
	}

	a.mu.Lock()
	a.sessions[session.ConnectionID] = session
	a.mu.Unlock()

	a.audit(models.AuditActionLogin, login, nil)
	return session, token, nil
}

// ParseToken validates and parses a raw JWT string, then checks that the
// session named by the "jti" claim is still registered and unexpired.
//
// Any validation failure (expired, wrong issuer, malformed, session
// dropped) is normalised to ErrTokenIsExpiredOrInvalid so that callers do
// not need to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	a.mu.RLock()
	session, ok := a.sessions[token.ConnectionID]
	a.mu.RUnlock()

	if !ok || session.Expired(time.Now()) {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// HasActiveSession reports whether at least one unexpired session is
// registered.
func (a *authService) HasActiveSession() bool {
	now := time.Now()

	a.mu.RLock()
	defer a.mu.RUnlock()

	for _, session := range a.sessions {
		if !session.Expired(now) {
			return true
		}
	}
	return false
}

// DropSession removes a single session from the registry.
func (a *authService) DropSession(connectionID string) {
	a.mu.Lock()
	delete(a.sessions, connectionID)
	a.mu.Unlock()
}

// DropAllSessions clears the registry. Called when the vault locks.
func (a *authService) DropAllSessions() {
	a.mu.Lock()
	a.sessions = make(map[string]models.Session)
	a.mu.Unlock()
}

// SweepExpiredSessions removes sessions expired at now and returns how many
// were dropped.
func (a *authService) SweepExpiredSessions(now time.Time) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	dropped := 0
	for id, session := range a.sessions {
		if session.Expired(now) {
			delete(a.sessions, id)
			dropped++
		}
	}
	return dropped
}

func (a *authService) audit(action, resourceID string, opErr error) {
	entry := models.AuditEntry{
		ID:           a.ids.Generate(),
		Timestamp:    time.Now(),
		Action:       action,
		ResourceType: models.AuditResourceAccount,
		ResourceID:   resourceID,
		Success:      opErr == nil,
	}
	if opErr != nil {
		entry.ErrorMessage = opErr.Error()
	}
	a.auditLog.Append(entry)
}
