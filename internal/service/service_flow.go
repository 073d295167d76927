package service

import (
	"context"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/models"
)

// flowService is the concrete implementation of FlowService.
//
// The flow state is never stored — it is recomputed from three facts on
// every evaluation, so the machine can never be observed in an inconsistent
// state and can never reach the main app while the vault is locked.
type flowService struct {
	vault  VaultService
	auth   AuthService
	logger *logger.Logger
}

// NewFlowService constructs a FlowService over the vault and auth services.
func NewFlowService(vault VaultService, auth AuthService, logger *logger.Logger) FlowService {
	return &flowService{
		vault:  vault,
		auth:   auth,
		logger: logger,
	}
}

// Evaluate returns the settled flow state:
//
//	no account            → register_or_login
//	no active session     → user_login
//	no master password    → set_master_password
//	vault locked          → unlock_vault
//	otherwise             → main_app
//
// Storage errors leave the flow in the loading state.
func (f *flowService) Evaluate(ctx context.Context) (models.FlowState, error) {
	log := logger.FromContext(ctx)

	accountExists, err := f.vault.AccountExists(ctx)
	if err != nil {
		log.Err(err).Str("func", "*flowService.Evaluate").Msg("error checking account existence")
		return models.FlowStateLoading, err
	}
	if !accountExists {
		return models.FlowStateRegisterOrLogin, nil
	}

	if !f.auth.HasActiveSession() {
		return models.FlowStateUserLogin, nil
	}

	masterSet, err := f.vault.MasterPasswordSet(ctx)
	if err != nil {
		log.Err(err).Str("func", "*flowService.Evaluate").Msg("error checking master record existence")
		return models.FlowStateLoading, err
	}
	if !masterSet {
		return models.FlowStateSetMasterPassword, nil
	}

	if !f.vault.Unlocked() {
		return models.FlowStateUnlockVault, nil
	}

	return models.FlowStateMainApp, nil
}
