package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetUserIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int")

	_, ok := GetUserIDFromContext(ctx)
	assert.False(t, ok)
}

func TestGetConnectionIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), ConnectionIDCtxKey, "conn-1")

	connectionID, ok := GetConnectionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "conn-1", connectionID)
}

func TestGetConnectionIDFromContext_Missing(t *testing.T) {
	_, ok := GetConnectionIDFromContext(context.Background())
	assert.False(t, ok)
}

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "connectionID", ConnectionIDCtxKey.String())
}
