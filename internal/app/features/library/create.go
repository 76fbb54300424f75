package library

import (
	"context"
	"net/http"
	"strings"
	"time"

	librarystore "github.com/safegate/console/internal/app/store/library"
	orgstore "github.com/safegate/console/internal/app/store/organizations"
	"github.com/safegate/console/internal/app/system/htmlsanitize"
	"github.com/safegate/console/internal/app/system/httpjson"
	"github.com/safegate/console/internal/app/system/timeouts"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// maxUploadBytes caps a single library upload at 32 MB.
const maxUploadBytes = 32 << 20

// HandleCreate uploads a file and records its metadata. The request is
// multipart/form-data with fields title, description, category,
// organizationId and a "file" part. The blob goes up first; if the
// metadata insert fails afterwards the blob is removed again.
// POST /api/library
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid multipart form", err)
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	description := strings.TrimSpace(r.FormValue("description"))
	category := r.FormValue("category")
	orgIDHex := r.FormValue("organizationId")

	file, header, err := r.FormFile("file")
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "missing required fields: title, description, organizationId, file", err)
		return
	}
	defer file.Close()

	if title == "" || description == "" || orgIDHex == "" {
		httpjson.Error(w, http.StatusBadRequest, "missing required fields: title, description, organizationId, file", nil)
		return
	}
	if category == "" {
		category = "otros"
	}
	if !models.IsValidLibraryCategory(category) {
		httpjson.Error(w, http.StatusBadRequest, "category is not valid", nil)
		return
	}

	orgID, err := primitive.ObjectIDFromHex(orgIDHex)
	if err != nil {
		httpjson.Error(w, http.StatusBadRequest, "organizationId is not a valid id", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// Snapshot the organization's display name on the record. A missing
	// organization does not block the upload.
	orgName := "Unknown organization"
	if org, err := orgstore.New(h.DB).GetByID(ctx, orgID); err == nil {
		orgName = org.DisplayName
	}

	now := time.Now().UTC()
	storagePath := buildStoragePath(orgID, header.Filename, now)
	contentType := header.Header.Get("Content-Type")

	if err := h.Storage.Put(ctx, storagePath, file, contentType); err != nil {
		h.Log.Error("library upload failed", zap.String("path", storagePath), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to upload file", err)
		return
	}

	store := librarystore.New(h.DB)
	doc := models.LibraryDocument{
		Title:            title,
		Description:      htmlsanitize.Sanitize(description),
		Category:         category,
		OrganizationID:   orgID,
		OrganizationName: orgName,
		FileURL:          h.Storage.URL(storagePath),
		FileName:         header.Filename,
		FileSize:         header.Size,
		FileType:         contentType,
		StoragePath:      storagePath,
	}

	created, err := store.Create(ctx, doc)
	if err != nil {
		// Don't leave an orphaned blob behind a failed insert.
		if delErr := h.Storage.Delete(ctx, storagePath); delErr != nil {
			h.Log.Warn("failed to remove blob after metadata write error",
				zap.String("path", storagePath), zap.Error(delErr))
		}
		h.Log.Error("failed to create library document", zap.String("title", title), zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "failed to create library document", err)
		return
	}

	h.Log.Info("library document created",
		zap.String("doc_id", created.ID.Hex()),
		zap.String("organization_id", orgID.Hex()),
		zap.String("path", storagePath))

	httpjson.Write(w, http.StatusCreated, created)
}
