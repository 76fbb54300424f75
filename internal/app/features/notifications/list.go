package notifications

import (
	"context"
	"net/http"

	notificationstore "github.com/safegate/console/internal/app/store/notifications"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.uber.org/zap"
)

// HandleList returns every notification, newest first.
// GET /api/notifications
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := notificationstore.New(h.DB)
	list, err := store.All(ctx)
	if err != nil {
		h.Log.Error("failed to list notifications", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load notifications", err)
		return
	}
	if list == nil {
		list = []models.Notification{}
	}
	httpjson.Write(w, http.StatusOK, list)
}
