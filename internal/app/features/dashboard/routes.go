// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the Dashboard API routes under the base path
// (typically "/api/dashboard" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/stats", h.HandleStats)

	return r
}
