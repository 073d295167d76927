package service

import (
	"github.com/MKhiriev/go-key-vault/internal/audit"
	"github.com/MKhiriev/go-key-vault/internal/config"
	"github.com/MKhiriev/go-key-vault/internal/crypto"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/store"
)

type Services struct {
	VaultService VaultService
	AuthService  AuthService
	FlowService  FlowService
}

func NewServices(storages *store.Storages, keychain crypto.KeyChainService, auditLog *audit.Log, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	vaultService := NewVaultService(storages.VaultRepository, keychain, auditLog, cfg.App, logger)
	authService := NewAuthService(storages.VaultRepository, keychain, auditLog, cfg.App, logger)

	return &Services{
		VaultService: vaultService,
		AuthService:  authService,
		FlowService:  NewFlowService(vaultService, authService, logger),
	}
}
