package models

import "time"

// Audit actions recorded for every state-changing or security-relevant
// vault operation.
const (
	AuditActionCreateAccount     = "account.create"
	AuditActionLogin             = "account.login"
	AuditActionAuthorize         = "account.authorize"
	AuditActionSetMasterPassword = "vault.set_master_password"
	AuditActionUnlock            = "vault.unlock"
	AuditActionLock              = "vault.lock"
	AuditActionCreateSecret      = "secret.create"
	AuditActionUpdateSecret      = "secret.update"
	AuditActionDeleteSecret      = "secret.delete"
	AuditActionListSecrets       = "secret.list"
	AuditActionSearchSecrets     = "secret.search"
	AuditActionRecordUsage       = "secret.record_usage"
	AuditActionExportAuditLog    = "audit.export"
)

// Audit resource types.
const (
	AuditResourceAccount = "account"
	AuditResourceVault   = "vault"
	AuditResourceSecret  = "secret"
	AuditResourceAudit   = "audit"
)

// AuditEntry is a single record in the bounded append-only audit log.
// Entries are immutable once appended.
type AuditEntry struct {
	// ID is the unique identifier of the entry (UUID).
	ID string `json:"id"`

	// Timestamp is when the audited operation finished.
	Timestamp time.Time `json:"timestamp"`

	// Action is one of the AuditAction* constants.
	Action string `json:"action"`

	// ResourceType is one of the AuditResource* constants.
	ResourceType string `json:"resource_type"`

	// ResourceID optionally identifies the affected resource.
	ResourceID string `json:"resource_id,omitempty"`

	// Success records whether the operation succeeded.
	Success bool `json:"success"`

	// ErrorMessage carries the failure reason for unsuccessful operations.
	ErrorMessage string `json:"error_message,omitempty"`
}
