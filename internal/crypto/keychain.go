// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// DefaultKDFIterations is the PBKDF2 iteration count used when no explicit
// count is configured. New master-password records store the count in use so
// later unlocks remain reproducible if the default ever changes.
const DefaultKDFIterations = 100_000

const (
	saltLen = 16 // 128-bit KDF salt
	keyLen  = 32 // 256-bit AES key
)

// ErrDecryptionFailed is returned by [KeyChainService.Decrypt] when the
// GCM authentication tag does not verify. It deliberately carries no detail
// about whether the key was wrong or the ciphertext was tampered with.
var ErrDecryptionFailed = errors.New("decryption failed")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// bcryptCost is the adaptive hashing cost factor. Stored in the struct
	// so it can be tuned per deployment target.
	bcryptCost int
}

// NewKeyChainService constructs a [KeyChainService] with the given bcrypt
// cost factor. Values outside the valid bcrypt range fall back to
// bcrypt.DefaultCost.
func NewKeyChainService(bcryptCost int) KeyChainService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &keyChainService{bcryptCost: bcryptCost}
}

// HashPassword implements [KeyChainService]. bcrypt salts internally, so two
// hashes of the same password never match byte-for-byte.
func (k *keyChainService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), k.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword implements [KeyChainService].
func (k *keyChainService) VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG and returns them as the KDF salt. Returns an error if the
// random read fails.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. It derives a 256-bit symmetric key
// from password and salt using PBKDF2 with an HMAC-SHA256 core. A
// non-positive iteration count falls back to [DefaultKDFIterations].
func (k *keyChainService) DeriveKey(password string, salt []byte, iterations int) []byte {
	if iterations <= 0 {
		iterations = DefaultKDFIterations
	}
	return pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
}

// Encrypt implements [KeyChainService]. It seals plaintext with key using
// AES-256-GCM and a fresh random 12-byte nonce. The nonce is returned
// separately so the caller persists it next to the ciphertext.
// Returns an error if cipher creation or the random nonce read fails.
func (k *keyChainService) Encrypt(key, plaintext []byte) ([]byte, []byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, nil, fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return nonce, ciphertext, nil
}

// Decrypt implements [KeyChainService]. It opens ciphertext sealed by
// [keyChainService.Encrypt] with the given key and nonce.
//
// Any failure — malformed nonce, wrong key, or a corrupted ciphertext whose
// authentication tag does not verify — is normalised to
// [ErrDecryptionFailed] so callers cannot distinguish the causes.
func (k *keyChainService) Decrypt(key, nonce, ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	if len(nonce) != gcm.NonceSize() {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
