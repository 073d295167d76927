package models

import "time"

// Environment identifies the deployment environment an API credential
// belongs to. Only the three predefined constants are valid values.
type Environment string

const (
	EnvironmentDev        Environment = "dev"
	EnvironmentStaging    Environment = "staging"
	EnvironmentProduction Environment = "production"
)

// Valid reports whether e is one of the known environment values.
func (e Environment) Valid() bool {
	switch e {
	case EnvironmentDev, EnvironmentStaging, EnvironmentProduction:
		return true
	}
	return false
}

// SecretRecord is a single stored API credential.
//
// SecretValue exists in plaintext only transiently in memory while the vault
// is unlocked; at rest it exists only inside the encrypted vault blob.
type SecretRecord struct {
	// ID is the unique identifier of the record (UUID).
	ID string `json:"id"`

	// Name is the human-readable name of the credential, e.g. "STRIPE_KEY".
	Name string `json:"name"`

	// Service is the provider the credential belongs to, e.g. "stripe".
	Service string `json:"service"`

	// SecretValue is the credential itself. Zeroed the instant the vault
	// is locked.
	SecretValue string `json:"secret_value"`

	// Environment is the deployment environment of the credential.
	Environment Environment `json:"environment"`

	// ProjectID optionally associates the credential with a project.
	ProjectID string `json:"project_id,omitempty"`

	// Scopes lists the permissions granted to the credential.
	Scopes []string `json:"scopes,omitempty"`

	// Tags are free-form labels used for search and grouping.
	Tags []string `json:"tags,omitempty"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`

	// IsActive marks whether the credential is currently in use.
	IsActive bool `json:"is_active"`

	// ExpiresAt optionally marks when the credential becomes invalid.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`

	// UsageCount is incremented by every recorded usage of the credential.
	UsageCount int64 `json:"usage_count"`

	// LastUsedAt is the timestamp of the most recent recorded usage.
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}

// SecretUpdate describes a partial update of a SecretRecord.
// Only non-nil fields are applied.
type SecretUpdate struct {
	Name        *string      `json:"name,omitempty"`
	Service     *string      `json:"service,omitempty"`
	SecretValue *string      `json:"secret_value,omitempty"`
	Environment *Environment `json:"environment,omitempty"`
	ProjectID   *string      `json:"project_id,omitempty"`
	Scopes      *[]string    `json:"scopes,omitempty"`
	Tags        *[]string    `json:"tags,omitempty"`
	IsActive    *bool        `json:"is_active,omitempty"`
	ExpiresAt   *time.Time   `json:"expires_at,omitempty"`
}
