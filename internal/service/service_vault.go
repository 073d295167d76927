// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-key-vault/internal/audit"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/internal/validators"
	"github.com/MKhiriev/go-key-vault/models"
)

// vaultService is the concrete implementation of VaultService.
//
// It is a state machine with three states: Uninitialized (no master
// password), Locked (verifier present, no key in memory), and Unlocked (key
// and plaintext secrets in memory). One mutex serializes every state-changing
// operation; the audit log has its own lock so appends never contend with
// vault operations.
type vaultService struct {
	repository store.VaultRepository
	keychain   crypto.KeyChainService
	validator  validators.Validator
	auditLog   *audit.Log
	ids        *utils.UUIDGenerator

	// kdfIterations is the PBKDF2 iteration count applied at master-password
	// setup time. Unlocks always use the persisted count, so changing this
	// value never invalidates an existing vault.
	kdfIterations int

	logger *logger.Logger

	mu       sync.Mutex
	unlocked bool
	// key is the derived vault key. Non-nil only while unlocked.
	key []byte
	// secrets is the plaintext working set in insertion order. Non-nil only
	// while unlocked.
	secrets []models.SecretRecord
	account models.UserAccount
	master  models.MasterPasswordRecord
}

// NewVaultService constructs a VaultService backed by the given repository
// and keychain. cfg supplies the KDF iteration count used at setup time.
func NewVaultService(repository store.VaultRepository, keychain crypto.KeyChainService, auditLog *audit.Log, cfg config.App, logger *logger.Logger) VaultService {
	return &vaultService{
		repository:    repository,
		keychain:      keychain,
		validator:     validators.NewSecretValidator(),
		auditLog:      auditLog,
		ids:           utils.NewUUIDGenerator(),
		kdfIterations: cfg.KDFIterations,
		logger:        logger,
	}
}

// CreateAccount registers the single owner account. The plaintext credential
// is hashed immediately; only the hash is handed to the repository.
//
// Returns the persisted account or:
//   - ErrInvalidDataProvided if login or credential is empty.
//   - A wrapped storage error if the repository call fails (e.g. an account
//     already exists — see store.ErrAccountAlreadyExists).
func (v *vaultService) CreateAccount(ctx context.Context, login, credential string) (models.UserAccount, error) {
	log := logger.FromContext(ctx)

	if login == "" || credential == "" {
		log.Error().Str("func", "*vaultService.CreateAccount").Msg("empty login or credential")
		v.audit(models.AuditActionCreateAccount, models.AuditResourceAccount, "", ErrInvalidDataProvided)
		return models.UserAccount{}, ErrInvalidDataProvided
	}

	credentialHash, err := v.keychain.HashPassword(credential)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateAccount").Msg("error hashing credential")
		v.audit(models.AuditActionCreateAccount, models.AuditResourceAccount, "", err)
		return models.UserAccount{}, fmt.Errorf("error hashing credential: %w", err)
	}

	account, err := v.repository.CreateAccount(ctx, models.UserAccount{
		Login:          login,
		CredentialHash: credentialHash,
		CreatedAt:      time.Now(),
	})
	if err != nil {
		log.Err(err).Str("func", "*vaultService.CreateAccount").Str("login", login).Msg("account creation ended with error")
		v.audit(models.AuditActionCreateAccount, models.AuditResourceAccount, "", err)
		return models.UserAccount{}, fmt.Errorf("account creation ended with error: %w", err)
	}

	v.audit(models.AuditActionCreateAccount, models.AuditResourceAccount, account.Login, nil)
	return account, nil
}

// SetMasterPassword performs the one-time master-password setup.
//
// A fresh random salt is generated, an initial empty vault payload is sealed
// with the derived key, and the verifier is persisted together with that
// blob in one repository transaction. Nothing is written until the blob is
// sealed, so a failure at any point leaves setup retryable. The derived key
// is discarded before returning: setup never leaves the vault unlocked.
func (v *vaultService) SetMasterPassword(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		log.Error().Str("func", "*vaultService.SetMasterPassword").Msg("empty master password")
		v.audit(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", ErrInvalidDataProvided)
		return ErrInvalidDataProvided
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	account, err := v.repository.GetAccount(ctx)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.SetMasterPassword").Msg("error loading account for initial blob")
		v.audit(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", err)
		return fmt.Errorf("error loading account: %w", err)
	}

	salt, err := v.keychain.GenerateSalt()
	if err != nil {
		log.Err(err).Str("func", "*vaultService.SetMasterPassword").Msg("error generating salt")
		v.audit(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", err)
		return fmt.Errorf("error generating salt: %w", err)
	}

	verifier, err := v.keychain.HashPassword(password)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.SetMasterPassword").Msg("error hashing master password")
		v.audit(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", err)
		return fmt.Errorf("error hashing master password: %w", err)
	}

	record := models.MasterPasswordRecord{
		Salt:         salt,
		PasswordHash: verifier,
		Iterations:   v.kdfIterations,
		CreatedAt:    time.Now(),
	}

	// Seal an initial empty payload so unlock always finds a blob.
	key := v.keychain.DeriveKey(password, record.Salt, record.Iterations)
	defer zeroKey(key)

	blob, err := v.sealPayload(key, models.VaultPayload{
		Secrets:      []models.SecretRecord{},
		Account:      account,
		MasterRecord: record,
	})
	if err != nil {
		log.Err(err).Str("func", "*vaultService.SetMasterPassword").Msg("error sealing initial vault blob")
		v.audit(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", err)
		return fmt.Errorf("error sealing initial vault blob: %w", err)
	}

	if err = v.repository.SetupMaster(ctx, record, blob); err != nil {
		log.Err(err).Str("func", "*vaultService.SetMasterPassword").Msg("error persisting master setup")
		v.audit(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", err)
		return fmt.Errorf("error persisting master setup: %w", err)
	}

	v.audit(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", nil)
	return nil
}

// Unlock derives the key from password and decrypts the persisted blob into
// memory.
//
// Every failure past input validation is reported as ErrAuthenticationFailed,
// whether the password was wrong, the blob was tampered with, or the record
// was missing — callers never learn which.
func (v *vaultService) Unlock(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	if password == "" {
		v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", ErrInvalidDataProvided)
		return ErrInvalidDataProvided
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.unlocked {
		v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", nil)
		return nil
	}

	record, err := v.repository.GetMasterRecord(ctx)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.Unlock").Msg("error loading master record")
		v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", ErrAuthenticationFailed)
		return ErrAuthenticationFailed
	}

	if !v.keychain.VerifyPassword(password, record.PasswordHash) {
		log.Error().Str("func", "*vaultService.Unlock").Msg("master password verifier mismatch")
		v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", ErrAuthenticationFailed)
		return ErrAuthenticationFailed
	}

	key := v.keychain.DeriveKey(password, record.Salt, record.Iterations)

	blob, err := v.repository.GetBlob(ctx)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.Unlock").Msg("error loading vault blob")
		zeroKey(key)
		v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", ErrAuthenticationFailed)
		return ErrAuthenticationFailed
	}

	plaintext, err := v.keychain.Decrypt(key, blob.Nonce, blob.Ciphertext)
	if err != nil {
		log.Err(err).Str("func", "*vaultService.Unlock").Msg("vault blob decryption failed")
		zeroKey(key)
		v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", ErrAuthenticationFailed)
		return ErrAuthenticationFailed
	}

	var payload models.VaultPayload
	if err = json.Unmarshal(plaintext, &payload); err != nil {
		log.Err(err).Str("func", "*vaultService.Unlock").Msg("error decoding vault payload")
		zeroKey(key)
		v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", ErrAuthenticationFailed)
		return ErrAuthenticationFailed
	}

	v.key = key
	v.secrets = payload.Secrets
	v.account = payload.Account
	v.master = payload.MasterRecord
	v.unlocked = true

	v.audit(models.AuditActionUnlock, models.AuditResourceVault, "", nil)
	return nil
}

// Lock discards the in-memory key and zeroes every plaintext secret value.
// Locking an already-locked vault is a no-op success.
func (v *vaultService) Lock(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.unlocked {
		v.audit(models.AuditActionLock, models.AuditResourceVault, "", nil)
		return nil
	}

	zeroKey(v.key)
	v.key = nil
	for i := range v.secrets {
		v.secrets[i].SecretValue = ""
	}
	v.secrets = nil
	v.account = models.UserAccount{}
	v.master = models.MasterPasswordRecord{}
	v.unlocked = false

	v.audit(models.AuditActionLock, models.AuditResourceVault, "", nil)
	return nil
}

// Unlocked reports the current lock flag.
func (v *vaultService) Unlocked() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.unlocked
}

// AccountExists reports whether the owner account has been created.
func (v *vaultService) AccountExists(ctx context.Context) (bool, error) {
	_, err := v.repository.GetAccount(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoAccount) {
			return false, nil
		}
		return false, fmt.Errorf("error checking account existence: %w", err)
	}
	return true, nil
}

// MasterPasswordSet reports whether master-password setup has run.
func (v *vaultService) MasterPasswordSet(ctx context.Context) (bool, error) {
	_, err := v.repository.GetMasterRecord(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNoMasterRecord) {
			return false, nil
		}
		return false, fmt.Errorf("error checking master record existence: %w", err)
	}
	return true, nil
}

// Secrets returns a copy of all secrets in insertion order.
func (v *vaultService) Secrets(ctx context.Context) ([]models.SecretRecord, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.unlocked {
		v.audit(models.AuditActionListSecrets, models.AuditResourceSecret, "", ErrVaultLocked)
		return nil, ErrVaultLocked
	}

	v.audit(models.AuditActionListSecrets, models.AuditResourceSecret, "", nil)
	return append([]models.SecretRecord{}, v.secrets...), nil
}

// CreateSecret validates and stores a new secret, re-sealing the vault blob
// before the call returns. If persistence fails the in-memory set is rolled
// back and the previous blob stays intact.
func (v *vaultService) CreateSecret(ctx context.Context, secret models.SecretRecord) (models.SecretRecord, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, secret); err != nil {
		log.Err(err).Str("func", "*vaultService.CreateSecret").Msg("secret validation failed")
		v.audit(models.AuditActionCreateSecret, models.AuditResourceSecret, "", err)
		return models.SecretRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.unlocked {
		v.audit(models.AuditActionCreateSecret, models.AuditResourceSecret, "", ErrVaultLocked)
		return models.SecretRecord{}, ErrVaultLocked
	}

	now := time.Now()
	secret.ID = v.ids.Generate()
	secret.CreatedAt = now
	secret.UpdatedAt = now
	secret.IsActive = true
	secret.UsageCount = 0
	secret.LastUsedAt = nil

	v.secrets = append(v.secrets, secret)

	if err := v.persistLocked(ctx); err != nil {
		v.secrets = v.secrets[:len(v.secrets)-1]
		log.Err(err).Str("func", "*vaultService.CreateSecret").Msg("error persisting vault blob")
		v.audit(models.AuditActionCreateSecret, models.AuditResourceSecret, secret.ID, err)
		return models.SecretRecord{}, fmt.Errorf("error persisting vault blob: %w", err)
	}

	v.audit(models.AuditActionCreateSecret, models.AuditResourceSecret, secret.ID, nil)
	return secret, nil
}

// UpdateSecret applies the non-nil fields of update to the secret with the
// given id and re-seals the vault blob. On persistence failure the previous
// record is restored in memory.
func (v *vaultService) UpdateSecret(ctx context.Context, id string, update models.SecretUpdate) (models.SecretRecord, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, update); err != nil {
		log.Err(err).Str("func", "*vaultService.UpdateSecret").Str("id", id).Msg("update validation failed")
		v.audit(models.AuditActionUpdateSecret, models.AuditResourceSecret, id, err)
		return models.SecretRecord{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.unlocked {
		v.audit(models.AuditActionUpdateSecret, models.AuditResourceSecret, id, ErrVaultLocked)
		return models.SecretRecord{}, ErrVaultLocked
	}

	idx := v.indexOfLocked(id)
	if idx < 0 {
		v.audit(models.AuditActionUpdateSecret, models.AuditResourceSecret, id, ErrSecretNotFound)
		return models.SecretRecord{}, ErrSecretNotFound
	}

	previous := v.secrets[idx]
	applySecretUpdate(&v.secrets[idx], update)
	v.secrets[idx].UpdatedAt = time.Now()

	if err := v.persistLocked(ctx); err != nil {
		v.secrets[idx] = previous
		log.Err(err).Str("func", "*vaultService.UpdateSecret").Str("id", id).Msg("error persisting vault blob")
		v.audit(models.AuditActionUpdateSecret, models.AuditResourceSecret, id, err)
		return models.SecretRecord{}, fmt.Errorf("error persisting vault blob: %w", err)
	}

	v.audit(models.AuditActionUpdateSecret, models.AuditResourceSecret, id, nil)
	return v.secrets[idx], nil
}

// DeleteSecret removes the secret with the given id and re-seals the vault
// blob. On persistence failure the previous working set is restored.
func (v *vaultService) DeleteSecret(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.unlocked {
		v.audit(models.AuditActionDeleteSecret, models.AuditResourceSecret, id, ErrVaultLocked)
		return ErrVaultLocked
	}

	idx := v.indexOfLocked(id)
	if idx < 0 {
		v.audit(models.AuditActionDeleteSecret, models.AuditResourceSecret, id, ErrSecretNotFound)
		return ErrSecretNotFound
	}

	previous := v.secrets
	remaining := make([]models.SecretRecord, 0, len(previous)-1)
	remaining = append(remaining, previous[:idx]...)
	remaining = append(remaining, previous[idx+1:]...)
	v.secrets = remaining

	if err := v.persistLocked(ctx); err != nil {
		v.secrets = previous
		log.Err(err).Str("func", "*vaultService.DeleteSecret").Str("id", id).Msg("error persisting vault blob")
		v.audit(models.AuditActionDeleteSecret, models.AuditResourceSecret, id, err)
		return fmt.Errorf("error persisting vault blob: %w", err)
	}

	v.audit(models.AuditActionDeleteSecret, models.AuditResourceSecret, id, nil)
	return nil
}

// SearchSecrets returns all secrets whose name, service, or any tag contains
// query, case-insensitively, in insertion order. An empty query matches
// everything.
func (v *vaultService) SearchSecrets(ctx context.Context, query string) ([]models.SecretRecord, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.unlocked {
		v.audit(models.AuditActionSearchSecrets, models.AuditResourceSecret, "", ErrVaultLocked)
		return nil, ErrVaultLocked
	}

	q := strings.ToLower(query)
	matches := make([]models.SecretRecord, 0)
	for _, secret := range v.secrets {
		if secretMatches(secret, q) {
			matches = append(matches, secret)
		}
	}

	v.audit(models.AuditActionSearchSecrets, models.AuditResourceSecret, "", nil)
	return matches, nil
}

// RecordUsage increments the usage counter of a secret and stamps the usage
// time. When the vault is locked the call is logged and audited but returns
// nil: usage tracking must never break a caller's hot path.
func (v *vaultService) RecordUsage(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.unlocked {
		log.Warn().Str("func", "*vaultService.RecordUsage").Str("id", id).Msg("usage recording skipped: vault is locked")
		v.audit(models.AuditActionRecordUsage, models.AuditResourceSecret, id, ErrVaultLocked)
		return nil
	}

	idx := v.indexOfLocked(id)
	if idx < 0 {
		v.audit(models.AuditActionRecordUsage, models.AuditResourceSecret, id, ErrSecretNotFound)
		return ErrSecretNotFound
	}

	previous := v.secrets[idx]
	now := time.Now()
	v.secrets[idx].UsageCount++
	v.secrets[idx].LastUsedAt = &now

	if err := v.persistLocked(ctx); err != nil {
		v.secrets[idx] = previous
		log.Err(err).Str("func", "*vaultService.RecordUsage").Str("id", id).Msg("error persisting vault blob")
		v.audit(models.AuditActionRecordUsage, models.AuditResourceSecret, id, err)
		return fmt.Errorf("error persisting vault blob: %w", err)
	}

	v.audit(models.AuditActionRecordUsage, models.AuditResourceSecret, id, nil)
	return nil
}

// ExportAuditLog returns a snapshot of the audit log, oldest first. The
// export itself is audited, after the snapshot is taken.
func (v *vaultService) ExportAuditLog(ctx context.Context) ([]models.AuditEntry, error) {
	snapshot := v.auditLog.Snapshot()
	v.audit(models.AuditActionExportAuditLog, models.AuditResourceAudit, "", nil)
	return snapshot, nil
}

// persistLocked re-seals the current working set and atomically replaces the
// persisted blob. Callers must hold v.mu with the vault unlocked.
func (v *vaultService) persistLocked(ctx context.Context) error {
	payload := models.VaultPayload{
		Secrets:      v.secrets,
		Account:      v.account,
		MasterRecord: v.master,
	}
	return v.saveBlob(ctx, v.key, payload)
}

func (v *vaultService) saveBlob(ctx context.Context, key []byte, payload models.VaultPayload) error {
	blob, err := v.sealPayload(key, payload)
	if err != nil {
		return err
	}
	return v.repository.SaveBlob(ctx, blob)
}

// sealPayload encodes and encrypts payload into a blob ready for persistence.
func (v *vaultService) sealPayload(key []byte, payload models.VaultPayload) (models.VaultBlob, error) {
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return models.VaultBlob{}, fmt.Errorf("error encoding vault payload: %w", err)
	}

	nonce, ciphertext, err := v.keychain.Encrypt(key, plaintext)
	if err != nil {
		return models.VaultBlob{}, fmt.Errorf("error sealing vault payload: %w", err)
	}

	return models.VaultBlob{
		Nonce:      nonce,
		Ciphertext: ciphertext,
		UpdatedAt:  time.Now(),
	}, nil
}

// indexOfLocked returns the position of the secret with the given id, or -1.
// Callers must hold v.mu.
func (v *vaultService) indexOfLocked(id string) int {
	for i := range v.secrets {
		if v.secrets[i].ID == id {
			return i
		}
	}
	return -1
}

// audit appends exactly one entry for a finished operation.
func (v *vaultService) audit(action, resourceType, resourceID string, opErr error) {
	entry := models.AuditEntry{
		ID:           v.ids.Generate(),
		Timestamp:    time.Now(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Success:      opErr == nil,
	}
	if opErr != nil {
		entry.ErrorMessage = opErr.Error()
	}
	v.auditLog.Append(entry)
}

func applySecretUpdate(secret *models.SecretRecord, update models.SecretUpdate) {
	if update.Name != nil {
		secret.Name = *update.Name
	}
	if update.Service != nil {
		secret.Service = *update.Service
	}
	if update.SecretValue != nil {
		secret.SecretValue = *update.SecretValue
	}
	if update.Environment != nil {
		secret.Environment = *update.Environment
	}
	if update.ProjectID != nil {
		secret.ProjectID = *update.ProjectID
	}
	if update.Scopes != nil {
		secret.Scopes = *update.Scopes
	}
	if update.Tags != nil {
		secret.Tags = *update.Tags
	}
	if update.IsActive != nil {
		secret.IsActive = *update.IsActive
	}
	if update.ExpiresAt != nil {
		secret.ExpiresAt = update.ExpiresAt
	}
}

func secretMatches(secret models.SecretRecord, loweredQuery string) bool {
	if loweredQuery == "" {
		return true
	}
	if strings.Contains(strings.ToLower(secret.Name), loweredQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(secret.Service), loweredQuery) {
		return true
	}
	for _, tag := range secret.Tags {
		if strings.Contains(strings.ToLower(tag), loweredQuery) {
			return true
		}
	}
	return false
}

func zeroKey(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
