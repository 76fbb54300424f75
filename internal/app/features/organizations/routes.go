// internal/app/features/organizations/routes.go
package organizations

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Organization API routes under the base path
// (typically "/api/organizations" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)

	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	r.Patch("/{id}/status", h.HandleStatusPatch)

	return r
}
