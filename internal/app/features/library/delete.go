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

// HandleDelete removes a library document and its stored file. The blob
// delete is best-effort: a storage failure is reported in the response
// "warning" field while the metadata record is removed regardless.
// DELETE /api/library/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "library document not found", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
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

	warning := ""
	if doc.StoragePath != "" {
		if delErr := h.Storage.Delete(ctx, doc.StoragePath); delErr != nil {
			h.Log.Warn("failed to delete library file",
				zap.String("path", doc.StoragePath), zap.Error(delErr))
			warning = "file could not be removed from storage"
		}
	}

	deleted, err := store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("failed to delete library document", zap.String("doc_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete library document", err)
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "library document not found", nil)
		return
	}

	resp := map[string]any{"message": "library document deleted"}
	if warning != "" {
		resp["warning"] = warning
	}
	httpjson.Write(w, http.StatusOK, resp)
}
