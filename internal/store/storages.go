package store

import (
	"context"

	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/logger"
)

type Storages struct {
	VaultRepository VaultRepository
}

// NewStorages opens the local sqlite database, applies migrations, and wires
// the repository container used by the service layer.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		VaultRepository: NewVaultRepository(db, log),
	}, nil
}
