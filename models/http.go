package models

// Failure kinds carried in [APIError.Kind]. They mirror the error taxonomy
// of the vault core so external clients can branch on structured values
// instead of parsing messages.
const (
	ErrKindValidation     = "validation"
	ErrKindAuthentication = "authentication"
	ErrKindVaultLocked    = "vault_locked"
	ErrKindAlreadyExists  = "already_exists"
	ErrKindAlreadySet     = "already_set"
	ErrKindNotFound       = "not_found"
	ErrKindStorage        = "storage"
	ErrKindInternal       = "internal"
)

// APIError is the structured failure shape returned by every bridge
// operation. Internal failure detail (stack traces, raw decryption errors)
// never crosses the boundary — only this shape does.
type APIError struct {
	// Kind is one of the ErrKind* constants.
	Kind string `json:"kind"`

	// Message is a short human-readable description safe to show to users.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e APIError) Error() string {
	return e.Kind + ": " + e.Message
}

// CredentialRequest is the request body for account registration and login.
type CredentialRequest struct {
	// Login is the account login identifier.
	Login string `json:"login"`

	// Credential is the plaintext login credential. It is hashed
	// immediately on receipt and never stored.
	Credential string `json:"credential"`
}

// PasswordRequest is the request body for master-password setup and unlock.
type PasswordRequest struct {
	// Password is the plaintext master password. It is used for key
	// derivation in memory and never stored.
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login call.
type LoginResponse struct {
	// Session describes the in-memory session created for this connection.
	Session Session `json:"session"`

	// Token is the compact JWT string authorizing subsequent requests.
	Token string `json:"token"`
}

// HealthResponse is returned by the always-available health endpoint so
// clients can distinguish "vault locked" from "service unreachable".
type HealthResponse struct {
	// Status is always "ok" when the bridge is reachable.
	Status string `json:"status"`

	// AuthState is the current auth state machine state name.
	AuthState string `json:"auth_state"`

	// VaultUnlocked reports the current vault lock flag.
	VaultUnlocked bool `json:"vault_unlocked"`
}

// StateResponse reports the auth state machine state to presentation-layer
// clients driving their own view of the flow.
type StateResponse struct {
	State string `json:"state"`
}
