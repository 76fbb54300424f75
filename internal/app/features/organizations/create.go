package organizations

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	organizationstore "github.com/safegate/console/internal/app/store/organizations"
	"github.com/safegate/console/internal/app/system/auth"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.uber.org/zap"
)

// HandleCreate creates an organization. Status is forced to active and
// the counters start at zero no matter what the body carries.
// POST /api/organizations
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body models.Organization
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.DisplayName = strings.TrimSpace(body.DisplayName)
	body.Address = strings.TrimSpace(body.Address)

	if body.Name == "" || body.DisplayName == "" || body.Address == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing required fields: name, displayName, address", nil)
		return
	}

	if u := auth.CurrentUser(r); u != nil {
		body.CreatedBy = u.UID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := organizationstore.New(h.DB)
	created, err := store.Create(ctx, body)
	if err != nil {
		h.Log.Error("failed to create organization", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create organization", err)
		return
	}

	h.Log.Info("organization created",
		zap.String("organization_id", created.ID.Hex()),
		zap.String("name", created.Name))

	httpjson.Write(w, http.StatusCreated, created)
}
