package authstore_test

import (
	"testing"

	authstore "github.com/safegate/console/internal/app/store/authaccounts"
	"github.com/safegate/console/internal/app/system/indexes"
	"github.com/safegate/console/internal/testutil"
)

func TestStore_CreateAccount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := authstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uid, err := store.CreateAccount(ctx, "Maria@Example.com", "secret99", "María")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if uid == "" {
		t.Fatal("expected a uid to be assigned")
	}

	acct, err := store.GetByEmail(ctx, "maria@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if acct.UID != uid {
		t.Errorf("UID = %q, want %q", acct.UID, uid)
	}
	if acct.Email != "maria@example.com" {
		t.Errorf("Email = %q, want lowercased", acct.Email)
	}
	if acct.PasswordHash == "secret99" || acct.PasswordHash == "" {
		t.Error("password must be stored hashed")
	}
}

func TestStore_CreateAccount_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The duplicate is caught by the unique email index.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	store := authstore.New(db)
	if _, err := store.CreateAccount(ctx, "dup@example.com", "secret99", "First"); err != nil {
		t.Fatalf("first CreateAccount failed: %v", err)
	}

	_, err := store.CreateAccount(ctx, "dup@example.com", "other999", "Second")
	if err != authstore.ErrEmailInUse {
		t.Errorf("expected ErrEmailInUse, got %v", err)
	}
}

func TestStore_CreateAccount_Validation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := authstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.CreateAccount(ctx, "not-an-email", "secret99", "X"); err != authstore.ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}
	if _, err := store.CreateAccount(ctx, "ok@example.com", "short", "X"); err != authstore.ErrWeakPassword {
		t.Errorf("expected ErrWeakPassword, got %v", err)
	}
}

func TestStore_Verify(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := authstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uid, err := store.CreateAccount(ctx, "verify@example.com", "secret99", "V")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	acct, err := store.Verify(ctx, "verify@example.com", "secret99")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if acct.UID != uid {
		t.Errorf("UID = %q, want %q", acct.UID, uid)
	}

	if _, err := store.Verify(ctx, "verify@example.com", "wrongpass"); err != authstore.ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := store.Verify(ctx, "nobody@example.com", "secret99"); err != authstore.ErrInvalidCredentials {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}

func TestStore_DeleteByUID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := authstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	uid, err := store.CreateAccount(ctx, "gone@example.com", "secret99", "G")
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}

	if err := store.DeleteByUID(ctx, uid); err != nil {
		t.Fatalf("DeleteByUID failed: %v", err)
	}
	if _, err := store.GetByEmail(ctx, "gone@example.com"); err != authstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteByUID(ctx, uid); err != authstore.ErrNotFound {
		t.Errorf("second delete: expected ErrNotFound, got %v", err)
	}
}
