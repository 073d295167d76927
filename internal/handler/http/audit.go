package http

import (
	"net/http"

	"github.com/MKhiriev/go-key-vault/internal/utils"
)

// exportAudit returns a snapshot of the audit log, oldest entry first.
func (h *Handler) exportAudit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.VaultService.ExportAuditLog(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
