package authapi_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/safegate/console/internal/app/features/authapi"
	authstore "github.com/safegate/console/internal/app/store/authaccounts"
	"github.com/safegate/console/internal/app/system/auth"
	"github.com/safegate/console/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleLogin(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := authstore.New(db).CreateAccount(ctx, "admin@example.com", "secret99", "Admin"); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	sessions, err := auth.NewSessionManager("test-key-0123456789", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	h := authapi.NewHandler(db, sessions, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/auth/login",
		strings.NewReader(`{"email":"admin@example.com","password":"secret99"}`))
	rec := httptest.NewRecorder()

	h.HandleLogin(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	if len(rec.Result().Cookies()) == 0 {
		t.Error("expected a session cookie to be set")
	}
}

func TestHandleLogin_BadPassword(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := authstore.New(db).CreateAccount(ctx, "admin@example.com", "secret99", "Admin"); err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	sessions, err := auth.NewSessionManager("test-key-0123456789", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	h := authapi.NewHandler(db, sessions, zap.NewNop())

	for _, body := range []string{
		`{"email":"admin@example.com","password":"wrong"}`,
		`{"email":"nobody@example.com","password":"secret99"}`,
	} {
		req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.HandleLogin(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("body %s: status = %d, want 401", body, rec.Code)
		}
	}
}

func TestHandleLogin_MissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)

	sessions, err := auth.NewSessionManager("test-key-0123456789", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	h := authapi.NewHandler(db, sessions, zap.NewNop())

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"x@example.com"}`))
	rec := httptest.NewRecorder()
	h.HandleLogin(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
