package store

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-key-vault/models"
)

// VaultRepository is the persistence boundary of the vault core. It owns
// the three durable records of a vault instance: the single owner account,
// the master-password verifier, and the encrypted vault blob.
//
// Implementations must guarantee that SaveBlob is atomic: either the new
// blob fully replaces the previous one, or a failure leaves the previous
// blob untouched.
type VaultRepository interface {
	// CreateAccount persists the owner account. Returns
	// [ErrAccountAlreadyExists] if one is already persisted.
	CreateAccount(ctx context.Context, account models.UserAccount) (models.UserAccount, error)

	// GetAccount returns the persisted owner account, or [ErrNoAccount].
	GetAccount(ctx context.Context) (models.UserAccount, error)

	// SetupMaster persists the master-password verifier together with the
	// initial vault blob in a single transaction, so a failed setup leaves
	// no verifier behind and stays retryable. Returns
	// [ErrMasterPasswordAlreadySet] if a verifier is already persisted.
	SetupMaster(ctx context.Context, record models.MasterPasswordRecord, blob models.VaultBlob) error

	// GetMasterRecord returns the persisted master-password verifier,
	// or [ErrNoMasterRecord].
	GetMasterRecord(ctx context.Context) (models.MasterPasswordRecord, error)

	// SaveBlob atomically replaces the persisted vault blob.
	SaveBlob(ctx context.Context, blob models.VaultBlob) error

	// GetBlob returns the persisted vault blob, or [ErrNoVaultBlob].
	GetBlob(ctx context.Context) (models.VaultBlob, error)
}
