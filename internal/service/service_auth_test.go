package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/audit"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthService(t *testing.T) (*authService, *mock.MockVaultRepository, *mock.MockKeyChainService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockVaultRepository(ctrl)
	keychain := mock.NewMockKeyChainService(ctrl)

	svc := &authService{
		repository:    repo,
		keychain:      keychain,
		auditLog:      audit.NewLog(100),
		ids:           utils.NewUUIDGenerator(),
		tokenSignKey:  "test-sign-key",
		tokenIssuer:   "go-key-vault-test",
		tokenDuration: time.Hour,
		logger:        logger.Nop(),
		mu:            sync.RWMutex{},
		sessions:      make(map[string]models.Session),
	}
	return svc, repo, keychain
}

func storedAccount() models.UserAccount {
	return models.UserAccount{ID: 1, Login: "alice", CredentialHash: "$2a$12$hash"}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, repo, keychain := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().GetAccount(ctx).Return(storedAccount(), nil)
	keychain.EXPECT().VerifyPassword("s3cret", "$2a$12$hash").Return(true)

	session, token, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), session.UserID)
	assert.NotEmpty(t, session.ConnectionID)
	assert.NotEmpty(t, token.SignedString)
	assert.True(t, svc.HasActiveSession())

	// the issued token resolves back to the registered session
	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, session.ConnectionID, parsed.ConnectionID)
	assert.Equal(t, int64(1), parsed.UserID)
}

func TestAuthService_Login_WrongCredential_UniformFailure(t *testing.T) {
	svc, repo, keychain := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().GetAccount(ctx).Return(storedAccount(), nil)
	keychain.EXPECT().VerifyPassword("wrong", "$2a$12$hash").Return(false)

	_, _, err := svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.False(t, svc.HasActiveSession())
}

func TestAuthService_Login_NoAccount_UniformFailure(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().GetAccount(ctx).Return(models.UserAccount{}, store.ErrNoAccount)

	// a missing account is indistinguishable from a wrong credential
	_, _, err := svc.Login(ctx, "alice", "s3cret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Login_WrongLogin_UniformFailure(t *testing.T) {
	svc, repo, _ := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().GetAccount(ctx).Return(storedAccount(), nil)

	_, _, err := svc.Login(ctx, "mallory", "s3cret")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, _, err := svc.Login(context.Background(), "alice", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_ParseToken_UnregisteredSession(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	// a structurally valid token whose session was never registered
	token, err := utils.GenerateJWTToken(svc.tokenIssuer, 1, "ghost-connection", time.Hour, svc.tokenSignKey)
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Malformed(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_DropAllSessions_InvalidatesTokens(t *testing.T) {
	svc, repo, keychain := newTestAuthService(t)
	ctx := context.Background()

	repo.EXPECT().GetAccount(ctx).Return(storedAccount(), nil)
	keychain.EXPECT().VerifyPassword("s3cret", "$2a$12$hash").Return(true)

	_, token, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	svc.DropAllSessions()

	assert.False(t, svc.HasActiveSession())
	_, err = svc.ParseToken(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_DropSession_RemovesOnlyThatSession(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	now := time.Now()

	svc.sessions["conn-1"] = models.Session{ConnectionID: "conn-1", ExpiresAt: now.Add(time.Hour)}
	svc.sessions["conn-2"] = models.Session{ConnectionID: "conn-2", ExpiresAt: now.Add(time.Hour)}

	svc.DropSession("conn-1")

	assert.NotContains(t, svc.sessions, "conn-1")
	assert.Contains(t, svc.sessions, "conn-2")
}

func TestAuthService_SweepExpiredSessions(t *testing.T) {
	svc, _, _ := newTestAuthService(t)
	now := time.Now()

	svc.sessions["expired"] = models.Session{ConnectionID: "expired", ExpiresAt: now.Add(-time.Minute)}
	svc.sessions["live"] = models.Session{ConnectionID: "live", ExpiresAt: now.Add(time.Hour)}

	dropped := svc.SweepExpiredSessions(now)

	assert.Equal(t, 1, dropped)
	assert.NotContains(t, svc.sessions, "expired")
	assert.Contains(t, svc.sessions, "live")
}

func TestAuthService_HasActiveSession_IgnoresExpired(t *testing.T) {
	svc, _, _ := newTestAuthService(t)

	svc.sessions["expired"] = models.Session{ConnectionID: "expired", ExpiresAt: time.Now().Add(-time.Minute)}

	assert.False(t, svc.HasActiveSession())
}
