package library

import (
	"context"
	"net/http"

	librarystore "github.com/safegate/console/internal/app/store/library"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.uber.org/zap"
)

// HandleList returns every library document, newest first.
// GET /api/library
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := librarystore.New(h.DB)
	docs, err := store.All(ctx)
	if err != nil {
		h.Log.Error("failed to list library documents", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load library documents", err)
		return
	}
	if docs == nil {
		docs = []models.LibraryDocument{}
	}
	httpjson.Write(w, http.StatusOK, docs)
}
