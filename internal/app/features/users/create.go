package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	authstore "github.com/safegate/console/internal/app/store/authaccounts"
	userstore "github.com/safegate/console/internal/app/store/users"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// createRequest is the POST body: profile fields plus the initial
// password for the auth account. The password never reaches the profile
// document.
type createRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	OrganizationID string `json:"organizationId"`
	Password       string `json:"password"`
	Status         string `json:"status"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	BadgeNumber    string `json:"badgeNumber"`
	ShiftHours     string `json:"shiftHours"`
	HomeNumber     string `json:"homeNumber"`
	HomeAddress    string `json:"homeAddress"`
}

// HandleCreate registers an auth account and then writes the profile
// document carrying the assigned uid. If the profile write fails the
// auth account is deleted again so the two systems don't drift on this
// path.
// POST /api/users
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var body createRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}

	body.Name = strings.TrimSpace(body.Name)
	body.Email = strings.TrimSpace(body.Email)

	if body.Name == "" || body.Email == "" || body.Role == "" || body.OrganizationID == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing required fields: name, email, role, organizationId", nil)
		return
	}
	if body.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "password is required for new users", nil)
		return
	}
	if len(body.Password) < authstore.MinPasswordLength {
		httpjson.Error(w, http.StatusBadRequest, "password must be at least 6 characters", nil)
		return
	}

	orgID, err := primitive.ObjectIDFromHex(body.OrganizationID)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "organizationId is not a valid id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	accounts := authstore.New(h.DB)
	uid, err := accounts.CreateAccount(ctx, body.Email, body.Password, body.Name)
	if err != nil {
		switch err {
		case authstore.ErrEmailInUse:
			httpjson.Error(w, http.StatusConflict, "email is already registered", err)
		case authstore.ErrInvalidEmail:
			httpjson.Error(w, http.StatusBadRequest, "email format is not valid", err)
		case authstore.ErrWeakPassword:
			httpjson.Error(w, http.StatusBadRequest, "password is too weak", err)
		default:
			h.Log.Error("auth account creation failed", zap.String("email", body.Email), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "authentication error", err)
		}
		return
	}

	store := userstore.New(h.DB)
	user := models.User{
		Name:           body.Name,
		Email:          body.Email,
		Role:           body.Role,
		Status:         body.Status,
		OrganizationID: &orgID,
		Phone:          body.Phone,
		Address:        body.Address,
		BadgeNumber:    body.BadgeNumber,
		ShiftHours:     body.ShiftHours,
		HomeNumber:     body.HomeNumber,
		HomeAddress:    body.HomeAddress,
		FirebaseUID:    uid,
	}

	created, err := store.Create(ctx, user)
	if err != nil {
		// Compensate: drop the auth account so the failed create leaves
		// no half-registered identity behind.
		if delErr := accounts.DeleteByUID(ctx, uid); delErr != nil {
			h.Log.Warn("failed to remove auth account after profile write error",
				zap.String("uid", uid), zap.Error(delErr))
		}
		switch err {
		case userstore.ErrBadRole, userstore.ErrBadStatus, userstore.ErrOrgNeeded:
			httpjson.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Log.Error("failed to create user", zap.String("email", body.Email), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to create user", err)
		}
		return
	}

	h.Log.Info("user created",
		zap.String("user_id", created.ID.Hex()),
		zap.String("uid", uid),
		zap.String("role", created.Role))

	httpjson.Write(w, http.StatusCreated, created)
}
