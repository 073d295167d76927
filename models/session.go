package models

import "time"

// Session authorizes a single client connection to call bridge operations
// once the vault is unlocked. Sessions are held only in memory, never
// persisted, and carry no cryptographic material — a restored session must
// never imply vault unlock.
type Session struct {
	// ConnectionID is the unique identifier of the client connection (UUID).
	ConnectionID string `json:"connection_id"`

	// UserID is the account the session was issued for.
	UserID int64 `json:"user_id"`

	// IssuedAt is when the session was created.
	IssuedAt time.Time `json:"issued_at"`

	// ExpiresAt optionally bounds the session lifetime. A zero value means
	// the session lives until disconnect or vault lock.
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the session has an expiry in the past at now.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}
