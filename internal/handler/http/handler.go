package http

import (
	"time"

	"github.com/MKhiriev/go-key-vault/internal/audit"
	"github.com/MKhiriev/go-key-vault/internal/logger"
	"github.com/MKhiriev/go-key-vault/internal/service"
	"github.com/MKhiriev/go-key-vault/internal/utils"
	"github.com/MKhiriev/go-key-vault/models"
)

type Handler struct {
	services *service.Services
	auditLog *audit.Log
	ids      *utils.UUIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, auditLog *audit.Log, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		auditLog: auditLog,
		ids:      utils.NewUUIDGenerator(),
		logger:   logger,
	}
}

// auditFailure records a request the bridge rejected before it reached the
// service layer — an undecodable body or a failed authorization. Failures
// past that point are audited by the services themselves, so this is never
// called from writeError.
func (h *Handler) auditFailure(action, resourceType, resourceID string, err error) {
	h.auditLog.Append(models.AuditEntry{
		ID:           h.ids.Generate(),
		Timestamp:    time.Now(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Success:      false,
		ErrorMessage: err.Error(),
	})
}
