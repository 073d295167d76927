package models

import "time"

// MasterPasswordRecord is the stored verifier for the vault master password.
// It exists only after the owner completes master-password setup.
//
// The record is required to reproduce the vault's symmetric encryption key:
// the key is derived from the master password and Salt with Iterations
// rounds of the KDF. PasswordHash is a verifier only — it is never itself
// used as the encryption key, and the derived key is never persisted.
type MasterPasswordRecord struct {
	// Salt is the random KDF salt generated at setup time.
	Salt []byte `json:"salt"`

	// PasswordHash is the adaptive hash of the master password, used only
	// to verify the password without deriving the full key.
	PasswordHash string `json:"-"`

	// Iterations is the KDF iteration count used at setup time. Stored so
	// future unlocks derive the exact same key from the same password and
	// salt even if the configured default changes later.
	Iterations int `json:"iterations"`

	// CreatedAt is the timestamp when the master password was set.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the MasterPasswordRecord model.
func (m MasterPasswordRecord) TableName() string {
	return "master_password"
}
