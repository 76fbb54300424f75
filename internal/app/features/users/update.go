package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	userstore "github.com/safegate/console/internal/app/store/users"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type updateRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	OrganizationID string `json:"organizationId"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	BadgeNumber    string `json:"badgeNumber"`
	ShiftHours     string `json:"shiftHours"`
	HomeNumber     string `json:"homeNumber"`
	HomeAddress    string `json:"homeAddress"`
}

// HandleUpdate replaces the listed profile fields. Deliberately no
// existence check first: an absent id matches nothing and still reports
// success, which is the console's PUT contract.
// PUT /api/users/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "id is not a valid user id", err)
		return
	}

	var body updateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)

	if body.Name == "" || body.Email == "" || body.Role == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing required fields: name, email, role", nil)
		return
	}

	upd := userstore.Update{
		Name:        body.Name,
		Email:       body.Email,
		Role:        body.Role,
		Status:      body.Status,
		Phone:       body.Phone,
		Address:     body.Address,
		BadgeNumber: body.BadgeNumber,
		ShiftHours:  body.ShiftHours,
		HomeNumber:  body.HomeNumber,
		HomeAddress: body.HomeAddress,
	}
	if body.OrganizationID != "" {
		orgID, err := primitive.ObjectIDFromHex(body.OrganizationID)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, "organizationId is not a valid id", err)
			return
		}
		upd.OrganizationID = &orgID
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)
	if err := store.Update(ctx, id, upd); err != nil {
		h.Log.Error("failed to update user", zap.String("user_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update user", err)
		return
	}

	// Echo the merged field set back; there is no reload because an
	// absent id still answers 200 here.
	resp := map[string]any{
		"id":      id.Hex(),
		"name":    body.Name,
		"email":   body.Email,
		"role":    body.Role,
		"message": "user updated",
	}
	if body.Status != "" {
		resp["status"] = body.Status
	}
	if body.OrganizationID != "" {
		resp["organizationId"] = body.OrganizationID
	}
	if body.Phone != "" {
		resp["phone"] = body.Phone
	}
	if body.Address != "" {
		resp["address"] = body.Address
	}
	if body.BadgeNumber != "" {
		resp["badgeNumber"] = body.BadgeNumber
	}
	if body.ShiftHours != "" {
		resp["shiftHours"] = body.ShiftHours
	}
	if body.HomeNumber != "" {
		resp["homeNumber"] = body.HomeNumber
	}
	if body.HomeAddress != "" {
		resp["homeAddress"] = body.HomeAddress
	}
	httpjson.Write(w, http.StatusOK, resp)
}
