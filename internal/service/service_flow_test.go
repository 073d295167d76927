package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/mock"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestFlowService(t *testing.T) (FlowService, *mock.MockVaultService, *mock.MockAuthService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	auth := mock.NewMockAuthService(ctrl)

	return NewFlowService(vault, auth, logger.Nop()), vault, auth
}

func TestFlowService_Evaluate_NoAccount(t *testing.T) {
	flow, vault, _ := newTestFlowService(t)
	ctx := context.Background()

	vault.EXPECT().AccountExists(ctx).Return(false, nil)

	state, err := flow.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlowStateRegisterOrLogin, state)
}

func TestFlowService_Evaluate_NoSession(t *testing.T) {
	flow, vault, auth := newTestFlowService(t)
	ctx := context.Background()

	vault.EXPECT().AccountExists(ctx).Return(true, nil)
	auth.EXPECT().HasActiveSession().Return(false)

	state, err := flow.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlowStateUserLogin, state)
}

func TestFlowService_Evaluate_NoMasterPassword(t *testing.T) {
	flow, vault, auth := newTestFlowService(t)
	ctx := context.Background()

	vault.EXPECT().AccountExists(ctx).Return(true, nil)
	auth.EXPECT().HasActiveSession().Return(true)
	vault.EXPECT().MasterPasswordSet(ctx).Return(false, nil)

	state, err := flow.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlowStateSetMasterPassword, state)
}

func TestFlowService_Evaluate_VaultLocked(t *testing.T) {
	flow, vault, auth := newTestFlowService(t)
	ctx := context.Background()

	vault.EXPECT().AccountExists(ctx).Return(true, nil)
	auth.EXPECT().HasActiveSession().Return(true)
	vault.EXPECT().MasterPasswordSet(ctx).Return(true, nil)
	vault.EXPECT().Unlocked().Return(false)

	state, err := flow.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlowStateUnlockVault, state)
}

func TestFlowService_Evaluate_MainApp(t *testing.T) {
	flow, vault, auth := newTestFlowService(t)
	ctx := context.Background()

	vault.EXPECT().AccountExists(ctx).Return(true, nil)
	auth.EXPECT().HasActiveSession().Return(true)
	vault.EXPECT().MasterPasswordSet(ctx).Return(true, nil)
	vault.EXPECT().Unlocked().Return(true)

	state, err := flow.Evaluate(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.FlowStateMainApp, state)
}

func TestFlowService_Evaluate_StorageError(t *testing.T) {
	flow, vault, _ := newTestFlowService(t)
	ctx := context.Background()

	vault.EXPECT().AccountExists(ctx).Return(false, assert.AnError)

	state, err := flow.Evaluate(ctx)
	assert.Error(t, err)
	assert.Equal(t, models.FlowStateLoading, state)
}
