package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// vaultRepository is the sqlite-backed implementation of [VaultRepository].
// It owns the three tables of a vault instance: "accounts",
// "master_password", and "vault_blob".
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository constructs a [VaultRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewVaultRepository(db *DB, log *logger.Logger) VaultRepository {
	log.Debug().Msg("creating vault repository")
	return &vaultRepository{
		DB:     db,
		logger: log,
	}
}

// CreateAccount persists the single owner account.
//
// The existence check and the INSERT run inside one transaction so two
// concurrent registration attempts cannot both succeed.
//
// Error handling:
//   - an account row already present → [ErrAccountAlreadyExists].
//   - any driver-level failure → wrapped low-level sentinel.
func (r *vaultRepository) CreateAccount(ctx context.Context, account models.UserAccount) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateAccount").Msg("error during opening transaction")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var count int
	if err = tx.QueryRowContext(ctx, countAccounts).Scan(&count); err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateAccount").Msg("error counting accounts")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count > 0 {
		return models.UserAccount{}, ErrAccountAlreadyExists
	}

	query, args, err := buildInsertAccountQuery(account)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateAccount").Msg("error building insert query")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateAccount").Msg("error executing insert statement")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	accountID, err := result.LastInsertId()
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateAccount").Msg("error getting inserted account id")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateAccount").Msg("error committing transaction")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	account.ID = accountID
	return account, nil
}

// GetAccount retrieves the persisted owner account.
//
// Error handling:
//   - no account row → [ErrNoAccount].
//   - scan failure → [ErrScanningRow].
func (r *vaultRepository) GetAccount(ctx context.Context) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	var account models.UserAccount
	row := r.DB.QueryRowContext(ctx, getAccount)

	if err := row.Scan(&account.ID, &account.Login, &account.CredentialHash, &account.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserAccount{}, ErrNoAccount
		}
		log.Err(err).Str("func", "*vaultRepository.GetAccount").Msg("error scanning account row")
		return models.UserAccount{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return account, nil
}

// SetupMaster persists the master-password verifier together with the
// initial vault blob.
//
// The existence check, the verifier INSERT and the blob write run inside one
// transaction: either the whole setup commits or nothing does. A failure
// while writing the blob rolls the verifier back too, so setup can always be
// retried.
func (r *vaultRepository) SetupMaster(ctx context.Context, record models.MasterPasswordRecord, blob models.VaultBlob) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.SetupMaster").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var count int
	if err = tx.QueryRowContext(ctx, countMasterRecords).Scan(&count); err != nil {
		log.Err(err).Str("func", "*vaultRepository.SetupMaster").Msg("error counting master records")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if count > 0 {
		return ErrMasterPasswordAlreadySet
	}

	query, args, err := buildSaveMasterRecordQuery(record)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.SetupMaster").Msg("error building verifier insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*vaultRepository.SetupMaster").Msg("error executing verifier insert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	query, args, err = buildSaveBlobQuery(blob)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.SetupMaster").Msg("error building blob upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*vaultRepository.SetupMaster").Msg("error executing blob upsert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.SetupMaster").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetMasterRecord retrieves the persisted master-password verifier.
func (r *vaultRepository) GetMasterRecord(ctx context.Context) (models.MasterPasswordRecord, error) {
	log := logger.FromContext(ctx)

	var record models.MasterPasswordRecord
	row := r.DB.QueryRowContext(ctx, getMasterRecord)

	if err := row.Scan(&record.Salt, &record.PasswordHash, &record.Iterations, &record.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MasterPasswordRecord{}, ErrNoMasterRecord
		}
		log.Err(err).Str("func", "*vaultRepository.GetMasterRecord").Msg("error scanning master record row")
		return models.MasterPasswordRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

// SaveBlob atomically replaces the persisted vault blob.
//
// The upsert runs inside a transaction: either the new nonce+ciphertext pair
// fully replaces the previous row, or the rollback leaves the previous blob
// intact. The blob is never partially written.
func (r *vaultRepository) SaveBlob(ctx context.Context, blob models.VaultBlob) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.SaveBlob").Msg("error during opening transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildSaveBlobQuery(blob)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.SaveBlob").Msg("error building upsert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*vaultRepository.SaveBlob").Msg("error executing upsert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*vaultRepository.SaveBlob").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetBlob retrieves the persisted vault blob.
func (r *vaultRepository) GetBlob(ctx context.Context) (models.VaultBlob, error) {
	log := logger.FromContext(ctx)

	var blob models.VaultBlob
	row := r.DB.QueryRowContext(ctx, getVaultBlob)

	if err := row.Scan(&blob.Nonce, &blob.Ciphertext, &blob.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultBlob{}, ErrNoVaultBlob
		}
		log.Err(err).Str("func", "*vaultRepository.GetBlob").Msg("error scanning vault blob row")
		return models.VaultBlob{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}
