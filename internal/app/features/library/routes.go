// internal/app/features/library/routes.go
package library

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all Library API routes under the base path
// (typically "/api/library" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)

	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)

	return r
}
