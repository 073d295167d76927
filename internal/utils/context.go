// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and UUID generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the account identifier in the context.
// Used together with GetUserIDFromContext for type-safe retrieval
// of the account ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// ConnectionIDCtxKey is the key used to store the session connection
// identifier in the context. Populated by the bridge's auth middleware after
// token validation.
var ConnectionIDCtxKey = contextKey("connectionID")

// GetUserIDFromContext retrieves the account identifier from the context.
//
// Returns the account ID of type int64 and an ok flag:
//   - ok == true  — value is found and has the correct int64 type
//   - ok == false — value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetConnectionIDFromContext retrieves the session connection identifier
// from the context. The ok flag is false when the value is missing or has
// an unexpected type.
func GetConnectionIDFromContext(ctx context.Context) (string, bool) {
	connectionID, ok := ctx.Value(ConnectionIDCtxKey).(string)
	return connectionID, ok
}
