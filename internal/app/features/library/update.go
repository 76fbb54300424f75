package library

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	librarystore "github.com/safegate/console/internal/app/store/library"
	"github.com/safegate/console/internal/app/system/htmlsanitize"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// HandleUpdate changes document metadata and, when a "file" part is
// present, replaces the stored file. The previous blob is removed
// best-effort; a failed cleanup is reported in the response "warning"
// field but does not fail the request.
// PUT /api/library/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		httpjson.Error(w, http.StatusNotFound, "library document not found", err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	store := librarystore.New(h.DB)
	existing, err := store.GetByID(ctx, id)
	if err == librarystore.ErrNotFound {
		httpjson.Error(w, http.StatusNotFound, "library document not found", nil)
		return
	}
	if err != nil {
		h.Log.Error("failed to load library document", zap.String("doc_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load library document", err)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	if title == "" {
		title = existing.Title
	}
	if description == "" {
		description = existing.Description
	} else {
		description = htmlsanitize.Sanitize(description)
	}

	upd := librarystore.Update{
		Title:       title,
		Description: description,
		Category:    r.FormValue("category"),
		Status:      r.FormValue("status"),
	}
	if upd.Category != "" && !models.IsValidLibraryCategory(upd.Category) {
		httpjson.Error(w, http.StatusBadRequest, "category is not valid", nil)
		return
	}

	warning := ""
	file, header, err := r.FormFile("file")
	if err == nil {
		defer file.Close()

		now := time.Now().UTC()
		storagePath := buildStoragePath(existing.OrganizationID, header.Filename, now)
		contentType := header.Header.Get("Content-Type")

		if err := h.Storage.Put(ctx, storagePath, file, contentType); err != nil {
			h.Log.Error("library upload failed", zap.String("path", storagePath), zap.Error(err))
			httpjson.Error(w, http.StatusInternalServerError, "failed to upload file", err)
			return
		}

		if existing.StoragePath != "" {
			if delErr := h.Storage.Delete(ctx, existing.StoragePath); delErr != nil {
				h.Log.Warn("failed to delete replaced library file",
					zap.String("path", existing.StoragePath), zap.Error(delErr))
				warning = "previous file could not be removed from storage"
			}
		}

		upd.FileURL = h.Storage.URL(storagePath)
		upd.FileName = header.Filename
		upd.FileSize = header.Size
		upd.FileType = contentType
		upd.StoragePath = storagePath
	}

	if err := store.Update(ctx, id, upd); err != nil {
		if err == librarystore.ErrNotFound {
			httpjson.Error(w, http.StatusNotFound, "library document not found", nil)
			return
		}
		h.Log.Error("failed to update library document", zap.String("doc_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to update library document", err)
		return
	}

	updated, err := store.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("failed to reload library document", zap.String("doc_id", id.Hex()), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to load library document", err)
		return
	}

	resp := map[string]any{
		"document": updated,
		"message":  "library document updated",
	}
	if warning != "" {
		resp["warning"] = warning
	}
	httpjson.Write(w, http.StatusOK, resp)
}
