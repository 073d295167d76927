// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-key-vault/models"
)

const (
	countAccounts = `SELECT COUNT(id) FROM accounts;`

	getAccount = `SELECT id, login, credential_hash, created_at
	FROM accounts
	LIMIT 1;`

	countMasterRecords = `SELECT COUNT(id) FROM master_password;`

	getMasterRecord = `SELECT salt, password_hash, iterations, created_at
	FROM master_password
	WHERE id = 1;`

	getVaultBlob = `SELECT nonce, ciphertext, updated_at
	FROM vault_blob
	WHERE id = 1;`
)

// buildInsertAccountQuery builds the INSERT for the single owner account.
// sqlite uses "?" placeholders, squirrel's default format.
func buildInsertAccountQuery(account models.UserAccount) (string, []any, error) {
	return sq.Insert(account.TableName()).
		Columns("login", "credential_hash", "created_at").
		Values(account.Login, account.CredentialHash, account.CreatedAt).
		ToSql()
}

// buildSaveMasterRecordQuery builds the INSERT for the master-password
// verifier row. The table is constrained to a single row with id = 1.
func buildSaveMasterRecordQuery(record models.MasterPasswordRecord) (string, []any, error) {
	return sq.Insert(record.TableName()).
		Columns("id", "salt", "password_hash", "iterations", "created_at").
		Values(1, record.Salt, record.PasswordHash, record.Iterations, record.CreatedAt).
		ToSql()
}

// buildSaveBlobQuery builds the atomic replace of the vault blob row.
// The upsert runs inside a transaction so a failed write never leaves a
// partially replaced blob behind.
func buildSaveBlobQuery(blob models.VaultBlob) (string, []any, error) {
	return sq.Insert(blob.TableName()).
		Columns("id", "nonce", "ciphertext", "updated_at").
		Values(1, blob.Nonce, blob.Ciphertext, blob.UpdatedAt).
		Suffix("ON CONFLICT(id) DO UPDATE SET nonce = excluded.nonce, ciphertext = excluded.ciphertext, updated_at = excluded.updated_at").
		ToSql()
}
