package library

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	librarystore "github.com/safegate/console/internal/app/store/library"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleGet returns a single library document.
// GET /api/library/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "library document not found", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := librarystore.New(h.DB)
	doc, err := store.GetByID(ctx, id)
	if err == librarystore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "library document not found", nil)
		return
	}
	if err != nil {
		h.Log.Error("failed to load library document", zap.String("doc_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load library document", err)
		return
	}

	httpjson.Write(w, http.StatusOK, doc)
}
