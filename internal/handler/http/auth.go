package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// register creates the single owner account and logs it in immediately so
// the caller leaves with a usable session token.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		h.auditFailure(models.AuditActionCreateAccount, models.AuditResourceAccount, "", err)
		h.writeError(w, r, err)
		return
	}

	account, err := h.services.VaultService.CreateAccount(ctx, request.Login, request.Credential)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Int64("id", account.ID).Msg("owner account created")

	session, token, err := h.services.AuthService.Login(ctx, request.Login, request.Credential)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Session: session, Token: token.SignedString}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.CredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		h.auditFailure(models.AuditActionLogin, models.AuditResourceAccount, "", err)
		h.writeError(w, r, err)
		return
	}

	session, token, err := h.services.AuthService.Login(ctx, request.Login, request.Credential)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("connection_id", session.ConnectionID).Msg("session registered")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{Session: session, Token: token.SignedString}, http.StatusOK)
}

// state reports the settled auth flow state. It is deliberately outside the
// session gate: presentation clients need it to decide which screen to show
// before any token exists.
func (h *Handler) state(w http.ResponseWriter, r *http.Request) {
	flowState, err := h.services.FlowService.Evaluate(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StateResponse{State: string(flowState)}, http.StatusOK)
}
