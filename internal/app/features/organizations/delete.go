package organizations

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	organizationstore "github.com/safegate/console/internal/app/store/organizations"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleDelete removes an organization by id. There is no cascade:
// users and library documents referencing the organization are retained
// with a dangling organizationId.
// DELETE /api/organizations/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := organizationstore.New(h.DB)
	deleted, err := store.Delete(ctx, id)
	if err != nil {
		h.Log.Error("failed to delete organization", zap.String("organization_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to delete organization", err)
		return
	}
	if deleted == 0 {
		httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
		return
	}

	h.Log.Info("organization deleted", zap.String("organization_id", id.Hex()))
	httpjson.Message(w, "organization deleted")
}
