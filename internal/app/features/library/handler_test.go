package library_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/safegate/console/internal/app/features/library"
	librarystore "github.com/safegate/console/internal/app/store/library"
	"github.com/safegate/console/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// memStore is an in-memory blob store with an optional forced Delete
// failure.
type memStore struct {
	blobs     map[string][]byte
	failDel   bool
	deletions []string
}

func newMemStore() *memStore {
	return &memStore{blobs: make(map[string][]byte)}
}

func (m *memStore) Put(_ context.Context, path string, r io.Reader, _ string) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.blobs[path] = b
	return nil
}

func (m *memStore) Delete(_ context.Context, path string) error {
	if m.failDel {
		return errors.New("storage unavailable")
	}
	m.deletions = append(m.deletions, path)
	delete(m.blobs, path)
	return nil
}

func (m *memStore) URL(path string) string {
	return "/files/library/" + path
}

func newHandler(t *testing.T, storage *memStore) (*library.Handler, *mongo.Database) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return library.NewHandler(db, storage, zap.NewNop()), db
}

func multipartBody(t *testing.T, fields map[string]string, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatalf("write field %s: %v", k, err)
		}
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := fw.Write(fileContent); err != nil {
			t.Fatalf("write file part: %v", err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestHandleCreate_UploadsAndRecords(t *testing.T) {
	storage := newMemStore()
	h, db := newHandler(t, storage)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "lib-org", "Library Org")

	body, ct := multipartBody(t, map[string]string{
		"title":          "Reglamento",
		"description":    "Reglas de la comunidad",
		"category":       "reglamentos",
		"organizationId": org.ID.Hex(),
	}, "reglamento.pdf", []byte("%PDF-1.4 test"))

	req := httptest.NewRequest("POST", "/api/library", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		StoragePath      string `json:"storagePath"`
		OrganizationName string `json:"organizationName"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if created.OrganizationName != "Library Org" {
		t.Errorf("OrganizationName = %q, want snapshot of display name", created.OrganizationName)
	}
	if _, ok := storage.blobs[created.StoragePath]; !ok {
		t.Errorf("blob missing at %q", created.StoragePath)
	}
}

func TestHandleCreate_MissingFile(t *testing.T) {
	storage := newMemStore()
	h, _ := newHandler(t, storage)

	body, ct := multipartBody(t, map[string]string{
		"title":          "Sin archivo",
		"description":    "x",
		"organizationId": "000000000000000000000001",
	}, "", nil)

	req := httptest.NewRequest("POST", "/api/library", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()

	h.HandleCreate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestHandleUpdate_ReplacementChangesStoragePath(t *testing.T) {
	storage := newMemStore()
	h, db := newHandler(t, storage)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "replace-org", "Replace Org")
	doc := fx.CreateLibraryDocument(ctx, "Replace Me", org.ID, "library/"+org.ID.Hex()+"/1_old.pdf")
	storage.blobs[doc.StoragePath] = []byte("old")

	body, ct := multipartBody(t, map[string]string{
		"title":       "Replaced",
		"description": "new content",
	}, "nuevo.pdf", []byte("new bytes"))

	req := httptest.NewRequest("PUT", "/api/library/"+doc.ID.Hex(), body)
	req.Header.Set("Content-Type", ct)
	req = testutil.WithChiURLParam(req, "id", doc.ID.Hex())
	rec := httptest.NewRecorder()

	h.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	updated, err := librarystore.New(db).GetByID(ctx, doc.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.StoragePath == doc.StoragePath {
		t.Error("StoragePath should change when the file is replaced")
	}
	if updated.FileName != "nuevo.pdf" {
		t.Errorf("FileName = %q, want nuevo.pdf", updated.FileName)
	}
	if len(storage.deletions) != 1 || storage.deletions[0] != doc.StoragePath {
		t.Errorf("old blob not deleted: deletions = %v", storage.deletions)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if _, ok := resp["warning"]; ok {
		t.Error("no warning expected when the old blob deletes cleanly")
	}
}

func TestHandleUpdate_FailedOldBlobDeleteWarns(t *testing.T) {
	storage := newMemStore()
	storage.failDel = true
	h, db := newHandler(t, storage)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "warn-org", "Warn Org")
	doc := fx.CreateLibraryDocument(ctx, "Warn Me", org.ID, "library/"+org.ID.Hex()+"/1_old.pdf")

	body, ct := multipartBody(t, map[string]string{
		"title":       "Still Updated",
		"description": "x",
	}, "nuevo.pdf", []byte("new bytes"))

	req := httptest.NewRequest("PUT", "/api/library/"+doc.ID.Hex(), body)
	req.Header.Set("Content-Type", ct)
	req = testutil.WithChiURLParam(req, "id", doc.ID.Hex())
	rec := httptest.NewRecorder()

	h.HandleUpdate(rec, req)

	// The replace still succeeds; the cleanup failure is only a warning.
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if _, ok := resp["warning"]; !ok {
		t.Error("expected a warning field when the old blob cannot be deleted")
	}

	updated, err := librarystore.New(db).GetByID(ctx, doc.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.StoragePath == doc.StoragePath {
		t.Error("StoragePath should still change despite the warning")
	}
}

func TestHandleDelete_FailedBlobDeleteWarns(t *testing.T) {
	storage := newMemStore()
	storage.failDel = true
	h, db := newHandler(t, storage)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := fx.CreateOrganization(ctx, "del-org", "Del Org")
	doc := fx.CreateLibraryDocument(ctx, "Delete Me", org.ID, "library/"+org.ID.Hex()+"/1_x.pdf")

	req := httptest.NewRequest("DELETE", "/api/library/"+doc.ID.Hex(), nil)
	req = testutil.WithChiURLParam(req, "id", doc.ID.Hex())
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if _, ok := resp["warning"]; !ok {
		t.Error("expected a warning field when the blob cannot be deleted")
	}

	// The metadata record is gone regardless.
	if _, err := librarystore.New(db).GetByID(ctx, doc.ID); err != librarystore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestHandleDelete_NotFound(t *testing.T) {
	storage := newMemStore()
	h, _ := newHandler(t, storage)

	req := httptest.NewRequest("DELETE", "/api/library/000000000000000000000099", nil)
	req = testutil.WithChiURLParam(req, "id", "000000000000000000000099")
	rec := httptest.NewRecorder()

	h.HandleDelete(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}
