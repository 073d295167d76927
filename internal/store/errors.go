package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAccountAlreadyExists is returned when an attempt to create the
	// owner account fails because one is already persisted. A vault holds
	// at most one account.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrNoAccount is returned when a lookup expected to find the owner
	// account produces an empty result set.
	ErrNoAccount = errors.New("no account was found")

	// ErrMasterPasswordAlreadySet is returned when master-password setup is
	// attempted while a master-password record is already persisted.
	ErrMasterPasswordAlreadySet = errors.New("master password already set")

	// ErrNoMasterRecord is returned when a lookup expected to find the
	// master-password record produces an empty result set.
	ErrNoMasterRecord = errors.New("no master password record was found")

	// ErrNoVaultBlob is returned when no encrypted vault blob has been
	// persisted yet.
	ErrNoVaultBlob = errors.New("no vault blob was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied. They all map to the storage failure kind at the boundary.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a result row into a model
	// fails.
	ErrScanningRow = errors.New("failed to scan row")
)
