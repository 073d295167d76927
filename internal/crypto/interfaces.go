package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService owns all cryptography of the vault core. It knows nothing
// about the network, the database, or accounts. Its only job is to hash
// passwords, derive keys, and seal/open vault data.
//
// Scheme:
//
//	CredentialHash = HashPassword(loginCredential)           (account gate)
//	Salt           = GenerateSalt()                          (master setup)
//	Key            = DeriveKey(masterPassword, salt, iters)  (unlock)
//	Nonce, Blob    = Encrypt(Key, payload)                   (persist)
//	payload        = Decrypt(Key, Nonce, Blob)               (unlock)
type KeyChainService interface {
	// HashPassword hashes a password with an adaptive salted algorithm.
	// The cost factor is fixed at construction time. The same password
	// hashed twice yields different strings; use VerifyPassword to compare.
	HashPassword(password string) (string, error)

	// VerifyPassword reports whether password matches the stored hash.
	VerifyPassword(password, hash string) bool

	// GenerateSalt generates a random KDF salt (16 bytes / 128 bits).
	// The salt is not a secret — it is stored openly next to the verifier.
	// It exists so that identical passwords yield different keys.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit symmetric key from the master password
	// and salt using an iterated HMAC-SHA256 KDF. Identical inputs always
	// produce identical keys. The iteration count is a deliberate
	// brute-force-cost control and must be persisted with the salt so
	// future unlocks reproduce the same key.
	DeriveKey(password string, salt []byte, iterations int) []byte

	// Encrypt seals plaintext with key using AES-256-GCM. The nonce is
	// generated internally from the OS CSPRNG on every call — callers can
	// never supply one, which structurally prevents nonce reuse.
	Encrypt(key, plaintext []byte) (nonce, ciphertext []byte, err error)

	// Decrypt opens ciphertext sealed by Encrypt. It fails closed with
	// [ErrDecryptionFailed] when the authentication tag does not verify
	// (wrong key or tampered data) and never returns partial plaintext.
	Decrypt(key, nonce, ciphertext []byte) ([]byte, error)
}
