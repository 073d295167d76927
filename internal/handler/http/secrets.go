package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listSecrets(w http.ResponseWriter, r *http.Request) {
	secrets, err := h.services.VaultService.Secrets(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, secrets, http.StatusOK)
}

func (h *Handler) createSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var secret models.SecretRecord
	if err := json.NewDecoder(r.Body).Decode(&secret); err != nil {
		err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		h.auditFailure(models.AuditActionCreateSecret, models.AuditResourceSecret, "", err)
		h.writeError(w, r, err)
		return
	}

	created, err := h.services.VaultService.CreateSecret(ctx, secret)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Info().Str("id", created.ID).Str("service", created.Service).Msg("secret created")

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateSecret(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var update models.SecretUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		err = fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err)
		h.auditFailure(models.AuditActionUpdateSecret, models.AuditResourceSecret, id, err)
		h.writeError(w, r, err)
		return
	}

	updated, err := h.services.VaultService.UpdateSecret(ctx, id, update)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteSecret(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.VaultService.DeleteSecret(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("id", id).Msg("secret deleted")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) searchSecrets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	found, err := h.services.VaultService.SearchSecrets(r.Context(), query)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, found, http.StatusOK)
}

// recordUsage bumps the usage counter of a secret. A locked vault makes
// this a silent no-op at the service layer, so the handler still returns
// 200: usage tracking must never break a caller's hot path.
func (h *Handler) recordUsage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.VaultService.RecordUsage(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}
