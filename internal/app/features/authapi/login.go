package authapi

import (
	"context"
	"encoding/json"
	"net/http"

	authstore "github.com/safegate/console/internal/app/store/authaccounts"
	userstore "github.com/safegate/console/internal/app/store/users"
	"github.com/safegate/console/internal/app/system/auth"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and sets the session cookie. Unknown
// email and wrong password both answer 401 without distinguishing.
// POST /api/auth/login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var body loginRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if body.Email == "" || body.Password == "" {
		httpjson.Error(w, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, err := authstore.New(h.DB).Verify(ctx, body.Email, body.Password)
	if err == authstore.ErrInvalidCredentials {
		httpjson.Error(w, http.StatusUnauthorized, "invalid email or password", nil)
		return
	}
	if err != nil {
		h.Log.Error("credential verification failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "authentication error", err)
		return
	}

	user := auth.SessionUser{UID: acct.UID, Email: acct.Email, Name: acct.DisplayName}
	if err := h.Sessions.SignIn(w, r, user); err != nil {
		h.Log.Error("failed to write session", zap.String("uid", acct.UID), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to establish session", err)
		return
	}

	// Best-effort; a missing profile (orphaned account) is fine here.
	if err := userstore.New(h.DB).TouchLastLogin(ctx, acct.UID); err != nil {
		h.Log.Warn("failed to update last login", zap.String("uid", acct.UID), zap.Error(err))
	}

	httpjson.Write(w, http.StatusOK, map[string]string{
		"uid":   acct.UID,
		"email": acct.Email,
		"name":  acct.DisplayName,
	})
}

// HandleLogout clears the session cookie.
// POST /api/auth/logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.Log.Error("failed to clear session", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to sign out", err)
		return
	}
	httpjson.Message(w, "signed out")
}
