package organizations

import (
	"context"
	"net/http"

	organizationstore "github.com/safegate/console/internal/app/store/organizations"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.uber.org/zap"
)

// HandleList returns every organization.
// GET /api/organizations
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := organizationstore.New(h.DB)
	orgs, err := store.All(ctx)
	if err != nil {
		h.Log.Error("failed to list organizations", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load organizations", err)
		return
	}
	if orgs == nil {
		orgs = []models.Organization{}
	}
	httpjson.Write(w, http.StatusOK, orgs)
}
