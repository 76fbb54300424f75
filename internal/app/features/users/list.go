package users

import (
	"context"
	"net/http"

	userstore "github.com/safegate/console/internal/app/store/users"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.uber.org/zap"
)

// HandleList returns every user profile.
// GET /api/users
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)
	list, err := store.All(ctx)
	if err != nil {
		h.Log.Error("failed to list users", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load users", err)
		return
	}
	if list == nil {
		list = []models.User{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
