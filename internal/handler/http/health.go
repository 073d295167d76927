package http

import (
	"net/http"

	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

// health is the always-available liveness probe. It answers 200 regardless
// of auth or lock state so clients can tell "vault locked" apart from
// "daemon unreachable". A storage failure during state evaluation degrades
// the reported state to loading instead of failing the probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	flowState, err := h.services.FlowService.Evaluate(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("state evaluation failed during health check")
		flowState = models.FlowStateLoading
	}

	response := models.HealthResponse{
		Status:        "ok",
		AuthState:     string(flowState),
		VaultUnlocked: h.services.VaultService.Unlocked(),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
