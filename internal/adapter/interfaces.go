// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the local vault bridge.
//
// The primary abstraction is [BridgeAdapter], which decouples tooling built
// on top of the vault (CLIs, editor plugins, test harnesses) from the REST
// wire format. The package ships an HTTP implementation
// ([NewHTTPBridgeAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from the bridge's structured
// {kind, message} failures by mapHTTPError so that callers can use
// [errors.Is] for transport-agnostic error handling (e.g. [ErrVaultLocked]
// when an operation is attempted against a locked vault).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-key-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/bridge_adapter_mock.go -package=mock

// BridgeAdapter defines transport-agnostic communication with the local
// vault daemon. Implementations are responsible for serialisation, bearer
// token management, and mapping bridge errors to the sentinel values
// defined in this package.
type BridgeAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It is called automatically after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Health probes the always-available health endpoint. It succeeds as
	// long as the daemon is reachable, regardless of auth or lock state.
	Health(ctx context.Context) (models.HealthResponse, error)

	// State reports the daemon's settled auth flow state.
	State(ctx context.Context) (models.FlowState, error)

	// Register creates the owner account and stores the issued bearer token
	// via SetToken.
	Register(ctx context.Context, login, credential string) (models.Session, error)

	// Login authenticates against the existing account and stores the
	// issued bearer token via SetToken.
	Login(ctx context.Context, login, credential string) (models.Session, error)

	// SetMasterPassword runs the one-time master-password setup. On success
	// the vault is unlocked and the returned state reflects that.
	SetMasterPassword(ctx context.Context, password string) (models.FlowState, error)

	// Unlock decrypts the vault with the master password.
	Unlock(ctx context.Context, password string) (models.FlowState, error)

	// Lock discards the daemon's in-memory key and invalidates every
	// session, including this adapter's token.
	Lock(ctx context.Context) (models.FlowState, error)

	Secrets(ctx context.Context) ([]models.SecretRecord, error)
	CreateSecret(ctx context.Context, secret models.SecretRecord) (models.SecretRecord, error)
	UpdateSecret(ctx context.Context, id string, update models.SecretUpdate) (models.SecretRecord, error)
	DeleteSecret(ctx context.Context, id string) error
	SearchSecrets(ctx context.Context, query string) ([]models.SecretRecord, error)

	// RecordUsage bumps the usage counter of a secret.
	RecordUsage(ctx context.Context, id string) error

	// ExportAuditLog fetches the audit trail, oldest entry first.
	ExportAuditLog(ctx context.Context) ([]models.AuditEntry, error)
}
