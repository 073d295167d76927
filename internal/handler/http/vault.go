// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// setMasterPassword runs the one-time master-password setup and then
// unlocks the vault with the password still in hand, so a successful setup
// lands the caller directly in the main flow instead of on the unlock
// screen.
func (h *Handler) setMasterPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		h.auditFailure(models.AuditActionSetMasterPassword, models.AuditResourceVault, "", err)
		h.writeError(w, r, err)
		return
	}

	if err := h.services.VaultService.SetMasterPassword(ctx, request.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Msg("master password set")

	if err := h.services.VaultService.Unlock(ctx, request.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeState(w, r)
}

func (h *Handler) unlock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		h.auditFailure(models.AuditActionUnlock, models.AuditResourceVault, "", err)
		h.writeError(w, r, err)
		return
	}

	if err := h.services.VaultService.Unlock(ctx, request.Password); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeState(w, r)
}

// lock discards the in-memory key and drops every session: a session must
// never outlive vault access. Dropping the sessions deliberately lands the
// returned flow state on the login screen rather than the unlock screen —
// a locked vault behind a dead session requires a full re-authentication.
func (h *Handler) lock(w http.ResponseWriter, r *http.Request) {
	if err := h.services.VaultService.Lock(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.services.AuthService.DropAllSessions()
	logger.FromRequest(r).Info().Msg("vault locked, all sessions dropped")

	h.writeState(w, r)
}

// writeState responds with the freshly evaluated flow state so clients can
// advance their screen without a second round trip.
func (h *Handler) writeState(w http.ResponseWriter, r *http.Request) {
	flowState, err := h.services.FlowService.Evaluate(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.StateResponse{State: string(flowState)}, http.StatusOK)
}
