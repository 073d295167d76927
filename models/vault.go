package models

import "time"

// VaultBlob is the encrypted-at-rest form of the vault contents: a single
// opaque ciphertext plus the AES-GCM nonce it was sealed with.
//
// The blob is never partially written — persistence replaces the previous
// blob atomically on success, and a failed write leaves it intact.
type VaultBlob struct {
	// Nonce is the random nonce generated for this encryption. A fresh
	// nonce is produced on every seal; nonces are never reused.
	Nonce []byte `json:"nonce"`

	// Ciphertext is the AEAD-sealed serialization of [VaultPayload].
	Ciphertext []byte `json:"ciphertext"`

	// UpdatedAt is the timestamp of the last successful blob write.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the VaultBlob model.
func (v VaultBlob) TableName() string {
	return "vault_blob"
}

// VaultPayload is the plaintext structure serialized into a [VaultBlob].
// It exists only in memory while the vault is unlocked.
type VaultPayload struct {
	Secrets      []SecretRecord       `json:"secrets"`
	Account      UserAccount          `json:"account"`
	MasterRecord MasterPasswordRecord `json:"master_record"`
}
