package models

// FlowState names the screens of the authentication flow. The flow always
// settles in exactly one state; which one is fully determined by three
// facts: does an account exist, is a session active, and is the vault
// unlocked.
type FlowState string

const (
	// FlowStateLoading is the transient boot state before persisted state
	// has been inspected.
	FlowStateLoading FlowState = "loading"

	// FlowStateRegisterOrLogin is entered on first run, before any account
	// exists.
	FlowStateRegisterOrLogin FlowState = "register_or_login"

	// FlowStateUserLogin is entered when an account exists but no session
	// is active.
	FlowStateUserLogin FlowState = "user_login"

	// FlowStateSetMasterPassword is entered after login when the master
	// password has never been set.
	FlowStateSetMasterPassword FlowState = "set_master_password"

	// FlowStateUnlockVault is entered after login when the master password
	// is set but the vault is locked.
	FlowStateUnlockVault FlowState = "unlock_vault"

	// FlowStateMainApp is the terminal state: logged in, vault unlocked.
	// It is unreachable while the vault is locked.
	FlowStateMainApp FlowState = "main_app"
)
