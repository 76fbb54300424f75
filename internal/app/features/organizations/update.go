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
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// updateRequest mirrors the mutable organization fields. Pointer fields
// for the nested blocks keep absent sections untouched.
type updateRequest struct {
	Name        string                       `json:"name"`
	DisplayName string                       `json:"displayName"`
	Address     string                       `json:"address"`
	City        string                       `json:"city"`
	State       string                       `json:"state"`
	ZipCode     string                       `json:"zipCode"`
	Country     string                       `json:"country"`
	Status      string                       `json:"status"`
	ContactInfo *models.ContactInfo          `json:"contactInfo"`
	Settings    *models.OrganizationSettings `json:"settings"`
}

// HandleUpdate merges the provided fields into the organization and
// returns the updated record.
// PUT /api/organizations/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
		return
	}

	var body updateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	if body.Status != "" && !status.IsValidOrganization(body.Status) {
		httpjson.Error(w, http.StatusBadRequest, `status must be "active", "inactive", or "suspended"`, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := organizationstore.New(h.DB)
	upd := organizationstore.Update{
		Name:        body.Name,
		DisplayName: body.DisplayName,
		Address:     body.Address,
		City:        body.City,
		State:       body.State,
		ZipCode:     body.ZipCode,
		Country:     body.Country,
		Status:      body.Status,
		ContactInfo: body.ContactInfo,
		Settings:    body.Settings,
	}

	if err := store.Update(ctx, id, upd); err != nil {
		if err == organizationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "organization not found", nil)
			return
		}
		h.Log.Error("failed to update organization", zap.String("organization_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update organization", err)
		return
	}

	org, err := store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload organization after update", zap.String("organization_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load organization", err)
		return
	}

	httpjson.Write(w, http.StatusOK, org)
}
