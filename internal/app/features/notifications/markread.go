package notifications

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	notificationstore "github.com/safegate/console/internal/app/store/notifications"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleMarkRead flags one notification as read.
// PATCH /api/notifications/{id}/read
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "notification not found", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	store := notificationstore.New(h.DB)
	if err := store.MarkRead(ctx, id); err != nil {
		if err == notificationstore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "notification not found", nil)
			return
		}
		h.Log.Error("failed to mark notification read", zap.String("notification_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update notification", err)
		return
	}

	httpjson.Message(w, "notification marked read")
}
