// internal/app/features/notifications/routes.go
package notifications

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the Notification API routes under the base path
// (typically "/api/notifications" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Patch("/{id}/read", h.HandleMarkRead)

	return r
}
