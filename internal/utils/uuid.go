package utils

import "github.com/google/uuid"

// UUIDGenerator mints the identifiers the vault hands out: secret record
// IDs, audit entry IDs, and session connection IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 so secret and audit IDs sort by creation time.
// If v7 generation fails it falls back to a random v4 rather than erroring:
// an ID is always produced.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
