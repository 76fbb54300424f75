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

// HandleGet returns one organization by id.
// GET /api/organizations/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := organizationstore.New(h.DB)
	org, err := store.GetByID(ctx, id)
	if err == organizationstore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
		return
	}
	if err != nil {
		h.Log.Error("failed to load organization", zap.String("organization_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load organization", err)
		return
	}

	httpjson.Write(w, http.StatusOK, org)
}
