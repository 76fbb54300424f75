package organizations

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	organizationstore "github.com/safegate/console/internal/app/store/organizations"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleStatusPatch mutates only the lifecycle status. An invalid value
// is rejected before any write, leaving the stored status unchanged.
// Suspended organizations can only be reactivated through this endpoint;
// the console toggle never produces "suspended".
// PATCH /api/organizations/{id}/status
func (h *Handler) HandleStatusPatch(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if !status.IsValidOrganization(body.Status) {
		httpjson.Error(w, http.StatusBadRequest, `status must be "active", "inactive", or "suspended"`, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := organizationstore.New(h.DB)
	if err := store.UpdateStatus(ctx, id, body.Status); err != nil {
		if err == organizationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
			return
		}
		h.Log.Error("failed to update organization status",
			zap.String("organization_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update organization status", err)
		return
	}

	h.Log.Info("organization status changed",
		zap.String("organization_id", id.Hex()),
		zap.String("new_status", body.Status))

	httpjson.Message(w, "organization status updated")
}
