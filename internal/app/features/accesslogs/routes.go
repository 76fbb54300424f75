// internal/app/features/accesslogs/routes.go
package accesslogs

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the AccessLog API routes under the base path
// (typically "/api/accesslogs" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)

	return r
}
