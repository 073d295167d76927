package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (VaultRepository, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := &DB{DB: mockDB, logger: logger.Nop()}
	return NewVaultRepository(db, logger.Nop()), mock
}

func TestCreateAccount_Success(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM accounts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO accounts`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	account, err := repo.CreateAccount(ctx, models.UserAccount{Login: "alice", CredentialHash: "h", CreatedAt: time.Now()})
	require.NoError(t, err)
	assert.Equal(t, int64(1), account.ID)
	assert.Equal(t, "alice", account.Login)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAccount_AlreadyExists(t *testing.T) {
	repo, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM accounts`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := repo.CreateAccount(ctx, models.UserAccount{Login: "bob"})
	assert.ErrorIs(t, err, ErrAccountAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAccount_NoAccount(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT id, login, credential_hash, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "credential_hash", "created_at"}))

	_, err := repo.GetAccount(context.Background())
	assert.ErrorIs(t, err, ErrNoAccount)
}

func TestGetAccount_Success(t *testing.T) {
	repo, mock := newMockRepo(t)
	createdAt := time.Now()

	mock.ExpectQuery(`SELECT id, login, credential_hash, created_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "login", "credential_hash", "created_at"}).
			AddRow(int64(7), "alice", "$2a$10$hash", createdAt))

	account, err := repo.GetAccount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), account.ID)
	assert.Equal(t, "alice", account.Login)
}

func TestSetupMaster_AlreadySet(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM master_password`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.SetupMaster(context.Background(), models.MasterPasswordRecord{Salt: []byte{1}}, models.VaultBlob{})
	assert.ErrorIs(t, err, ErrMasterPasswordAlreadySet)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetupMaster_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM master_password`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO master_password`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO vault_blob`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SetupMaster(context.Background(), models.MasterPasswordRecord{
		Salt:         []byte{1, 2, 3},
		PasswordHash: "$2a$10$hash",
		Iterations:   100_000,
		CreatedAt:    time.Now(),
	}, models.VaultBlob{
		Nonce:      []byte{0x0A},
		Ciphertext: []byte{0x0B},
		UpdatedAt:  time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// A failed blob write must roll the verifier insert back with it, otherwise
// setup commits half its state and can never be retried.
func TestSetupMaster_BlobWriteErrorRollsBackVerifier(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM master_password`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO master_password`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(`INSERT INTO vault_blob`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.SetupMaster(context.Background(), models.MasterPasswordRecord{
		Salt:         []byte{1, 2, 3},
		PasswordHash: "$2a$10$hash",
		Iterations:   100_000,
		CreatedAt:    time.Now(),
	}, models.VaultBlob{Nonce: []byte{1}, Ciphertext: []byte{2}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBlob_Success(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO vault_blob`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveBlob(context.Background(), models.VaultBlob{
		Nonce:      []byte{0x0A},
		Ciphertext: []byte{0x0B},
		UpdatedAt:  time.Now(),
	})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveBlob_ExecErrorRollsBack(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO vault_blob`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.SaveBlob(context.Background(), models.VaultBlob{Nonce: []byte{1}, Ciphertext: []byte{2}})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBlob_NoBlob(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT nonce, ciphertext, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"nonce", "ciphertext", "updated_at"}))

	_, err := repo.GetBlob(context.Background())
	assert.ErrorIs(t, err, ErrNoVaultBlob)
}

func TestGetBlob_Success(t *testing.T) {
	repo, mock := newMockRepo(t)
	updatedAt := time.Now()

	mock.ExpectQuery(`SELECT nonce, ciphertext, updated_at`).
		WillReturnRows(sqlmock.NewRows([]string{"nonce", "ciphertext", "updated_at"}).
			AddRow([]byte{0x0A}, []byte{0x0B, 0x0C}, updatedAt))

	blob, err := repo.GetBlob(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{0x0A}, blob.Nonce)
	assert.Equal(t, []byte{0x0B, 0x0C}, blob.Ciphertext)
}
