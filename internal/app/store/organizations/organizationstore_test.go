package organizationstore_test

import (
	"testing"

	organizationstore "github.com/safegate/console/internal/app/store/organizations"
	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/domain/models"
	"github.com/safegate/console/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org := models.Organization{
		Name:        "vista-azul",
		DisplayName: "Residencial Vista Azul",
		Address:     "Calle 1",
		City:        "Guadalajara",
		State:       "Jalisco",
	}

	created, err := store.Create(ctx, org)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.NameCI == "" {
		t.Error("expected NameCI to be set")
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
	if created.UpdatedAt.IsZero() {
		t.Error("expected UpdatedAt to be set")
	}
	if created.Status != status.Active {
		t.Errorf("expected status %q, got %q", status.Active, created.Status)
	}
}

func TestStore_Create_ForcesStatusAndCounters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// A client may try to smuggle in a status or inflated counters; both
	// are overwritten on create.
	org := models.Organization{
		Name:             "smuggler",
		DisplayName:      "Smuggler",
		Status:           status.Suspended,
		MemberCount:      99,
		GuardCount:       42,
		AccessPointCount: 7,
	}

	created, err := store.Create(ctx, org)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.Status != status.Active {
		t.Errorf("expected forced status %q, got %q", status.Active, created.Status)
	}
	if created.MemberCount != 0 || created.GuardCount != 0 || created.AccessPointCount != 0 {
		t.Errorf("expected zeroed counters, got %d/%d/%d",
			created.MemberCount, created.GuardCount, created.AccessPointCount)
	}

	// Verify the stored document, not just the returned struct.
	stored, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Status != status.Active || stored.MemberCount != 0 {
		t.Errorf("stored document not forced: status=%q members=%d", stored.Status, stored.MemberCount)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetByID(ctx, primitive.NewObjectID())
	if err != organizationstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Update_MergesFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{
		Name:        "update-me",
		DisplayName: "Before",
		City:        "Monterrey",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = store.Update(ctx, created.ID, organizationstore.Update{
		DisplayName: "After",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	updated, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if updated.DisplayName != "After" {
		t.Errorf("DisplayName = %q, want After", updated.DisplayName)
	}
	if updated.City != "Monterrey" {
		t.Errorf("City = %q, want untouched Monterrey", updated.City)
	}
}

func TestStore_Update_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Update(ctx, primitive.NewObjectID(), organizationstore.Update{DisplayName: "x"})
	if err != organizationstore.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_UpdateStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{Name: "status-org", DisplayName: "Status Org"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.UpdateStatus(ctx, created.ID, status.Suspended); err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != status.Suspended {
		t.Errorf("Status = %q, want %q", got.Status, status.Suspended)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{Name: "delete-org", DisplayName: "Delete Org"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	deleted, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("DeletedCount = %d, want 1", deleted)
	}

	if _, err := store.GetByID(ctx, created.ID); err != organizationstore.ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again matches nothing.
	deleted, err = store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if deleted != 0 {
		t.Errorf("second DeletedCount = %d, want 0", deleted)
	}
}
