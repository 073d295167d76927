package models

import "time"

// UserAccount represents the single owner account of a vault instance.
// At most one account ever exists per vault; it is created once and is
// immutable afterwards except through explicit credential rotation.
type UserAccount struct {
	// ID is the internal unique identifier of the account.
	ID int64 `json:"id"`

	// Login is the account login identifier used during authentication.
	Login string `json:"login"`

	// CredentialHash is the adaptive salted hash of the login credential.
	// Never exposed via JSON and never stored in plaintext form.
	CredentialHash string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the UserAccount model.
func (u UserAccount) TableName() string {
	return "accounts"
}
