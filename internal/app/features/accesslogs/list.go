package accesslogs

import (
	"context"
	"net/http"
	"strconv"

	accesslogstore "github.com/safegate/console/internal/app/store/accesslogs"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.uber.org/zap"
)

const defaultListLimit = 100

// HandleList returns recent gate events, newest first. An optional
// ?limit= query caps the result; it defaults to 100.
// GET /api/accesslogs
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	limit := int64(defaultListLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			httpjson.Error(w, http.StatusBadRequest, "limit must be a positive integer", err)
			return
		}
		limit = n
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := accesslogstore.New(h.DB)
	logs, err := store.Recent(ctx, limit)
	if err != nil {
		h.Log.Error("failed to list access logs", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load access logs", err)
		return
	}
	if logs == nil {
		logs = []models.AccessLog{}
	}
	httpjson.Write(w, http.StatusOK, logs)
}
