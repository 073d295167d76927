package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-key-vault/models"
)

// VaultService owns the lifecycle of the encrypted vault: account creation,
// master-password setup, lock state, and every secret operation. All secret
// operations require the vault to be unlocked.
type VaultService interface {
	// CreateAccount registers the single owner account of the vault.
	CreateAccount(ctx context.Context, login, credential string) (models.UserAccount, error)

	// SetMasterPassword performs the one-time master-password setup: it
	// stores the verifier and seals an initial empty vault blob. The
	// derived key is discarded; the vault stays locked until Unlock.
	SetMasterPassword(ctx context.Context, password string) error

	// Unlock derives the key from password and decrypts the vault blob
	// into memory. Any failure is reported uniformly as an
	// authentication failure.
	Unlock(ctx context.Context, password string) error

	// Lock discards the in-memory key and plaintext secrets. Locking an
	// already-locked vault is a no-op success.
	Lock(ctx context.Context) error

	// Unlocked reports the current lock flag.
	Unlocked() bool

	// AccountExists reports whether the owner account has been created.
	AccountExists(ctx context.Context) (bool, error)

	// MasterPasswordSet reports whether master-password setup has run.
	MasterPasswordSet(ctx context.Context) (bool, error)

	Secrets(ctx context.Context) ([]models.SecretRecord, error)
	CreateSecret(ctx context.Context, secret models.SecretRecord) (models.SecretRecord, error)
	UpdateSecret(ctx context.Context, id string, update models.SecretUpdate) (models.SecretRecord, error)
	DeleteSecret(ctx context.Context, id string) error
	SearchSecrets(ctx context.Context, query string) ([]models.SecretRecord, error)

	// RecordUsage increments the usage counter of a secret. When the vault
	// is locked the call is a silent no-op: usage tracking must never
	// break a caller's hot path.
	RecordUsage(ctx context.Context, id string) error

	// ExportAuditLog returns a snapshot of the audit log, oldest first.
	ExportAuditLog(ctx context.Context) ([]models.AuditEntry, error)
}

// AuthService owns the account login gate and the in-memory session
// registry. Sessions are never persisted; a daemon restart invalidates all
// of them.
type AuthService interface {
	// Login verifies the account credential and, on success, registers a
	// new session and issues a JWT tied to it.
	Login(ctx context.Context, login, credential string) (models.Session, models.Token, error)

	// ParseToken validates a raw JWT string and checks that the session it
	// references is still registered.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// HasActiveSession reports whether at least one unexpired session is
	// registered.
	HasActiveSession() bool

	// DropSession removes a single session from the registry.
	DropSession(connectionID string)

	// DropAllSessions clears the registry. Called when the vault locks:
	// a session must never outlive vault access.
	DropAllSessions()

	// SweepExpiredSessions removes sessions expired at now and returns how
	// many were dropped.
	SweepExpiredSessions(now time.Time) int
}

// FlowService evaluates which authentication flow state the daemon is in.
type FlowService interface {
	// Evaluate inspects persisted and in-memory state and returns the
	// settled flow state.
	Evaluate(ctx context.Context) (models.FlowState, error)
}
