package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)

	// routes without authorization: the health check and the state probe
	// must stay reachable even before login, and registration/login are
	// the operations that produce the token in the first place
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/auth/state", h.state)
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the session gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/vault/master-password", h.setMasterPassword)
		r.Post("/api/vault/unlock", h.unlock)
		r.Post("/api/vault/lock", h.lock)

		r.Get("/api/secrets", h.listSecrets)
		r.Post("/api/secrets", h.createSecret)
		r.Get("/api/secrets/search", h.searchSecrets)
		r.Put("/api/secrets/{id}", h.updateSecret)
		r.Delete("/api/secrets/{id}", h.deleteSecret)
		r.Post("/api/secrets/{id}/usage", h.recordUsage)

		r.Get("/api/audit", h.exportAudit)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
