// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-key-vault daemon. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file. Defaults are filled in last, so any explicitly
// provided value wins.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters and
	// cryptographic work factors.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local sqlite database that backs
	// the vault.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the local HTTP
	// bridge and the gRPC health endpoint.
	Server Server `envPrefix:"SERVER_"`

	// Audit holds settings for the in-memory audit log.
	Audit Audit `envPrefix:"AUDIT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged with the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control the session
// token lifecycle and the cryptographic work factors of the vault.
type App struct {
	// TokenSignKey is the secret key used to sign and verify session JWT
	// tokens. Must be kept confidential. Required.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Tokens whose issuer does not match this value are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session token remains valid after
	// issuance (e.g. "1h", "30m"). Expired sessions are swept in the
	// background and their tokens rejected.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the adaptive cost factor used when hashing the account
	// credential. Raising it makes brute-forcing stored hashes slower.
	// Out-of-range values fall back to the library default.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// KDFIterations is the PBKDF2 iteration count used when deriving the
	// vault encryption key from the master password. The value in effect at
	// setup time is persisted alongside the verifier so later unlocks reuse
	// it even if this setting changes.
	// Env: APP_KDF_ITERATIONS
	KDFIterations int `env:"KDF_ITERATIONS"`

	// Version is the semantic version string of the running daemon
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the path to the sqlite database file holding the encrypted
	// vault blob and the account records (e.g. "key-vault.db").
	// In-memory databases are rejected: the vault must survive restarts.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the local bridge listens,
	// in "host:port" format. The bridge is meant for same-host clients, so
	// the default binds to loopback.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address on which the gRPC health endpoint
	// listens, in "host:port" format.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Audit holds settings for the in-memory audit log.
type Audit struct {
	// Capacity is the maximum number of audit entries retained. When the
	// log is full the oldest entry is evicted first.
	// Env: AUDIT_CAPACITY
	Capacity int `env:"CAPACITY"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often expired sessions are purged from
	// the in-memory session registry.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the daemon configuration
// from all available sources. Earlier sources win for non-zero fields:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
