package orgutil_test

import (
	"testing"

	"github.com/safegate/console/internal/app/system/orgutil"
	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
)

func TestRecount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Counters start stale on purpose; Recount reconciles from users.
	org := fx.CreateOrganizationWithStatus(ctx, "recount-org", status.Active, 99, 99, 2)
	fx.CreateUser(ctx, "M1", "m1@example.com", "member", &org.ID)
	fx.CreateUser(ctx, "M2", "m2@example.com", "member", &org.ID)
	fx.CreateUser(ctx, "G1", "g1@example.com", "guard", &org.ID)
	fx.CreateUser(ctx, "A1", "a1@example.com", "admin", &org.ID)

	if err := orgutil.Recount(ctx, db, org.ID); err != nil {
		t.Fatalf("Recount failed: %v", err)
	}

	var got struct {
		MemberCount int `bson:"member_count"`
		GuardCount  int `bson:"guard_count"`
	}
	err := db.Collection("organizations").FindOne(ctx, bson.M{"_id": org.ID}).Decode(&got)
	if err != nil {
		t.Fatalf("reload organization: %v", err)
	}
	if got.MemberCount != 2 {
		t.Errorf("member_count = %d, want 2", got.MemberCount)
	}
	if got.GuardCount != 1 {
		t.Errorf("guard_count = %d, want 1 (admins excluded)", got.GuardCount)
	}
}

func TestRecountAll(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fx.CreateOrganizationWithStatus(ctx, "org-a", status.Active, 5, 5, 1)
	b := fx.CreateOrganizationWithStatus(ctx, "org-b", status.Active, 5, 5, 1)
	fx.CreateUser(ctx, "MA", "ma@example.com", "member", &a.ID)
	fx.CreateUser(ctx, "GB", "gb@example.com", "guard", &b.ID)

	if err := orgutil.RecountAll(ctx, db); err != nil {
		t.Fatalf("RecountAll failed: %v", err)
	}

	var gotA, gotB struct {
		MemberCount int `bson:"member_count"`
		GuardCount  int `bson:"guard_count"`
	}
	if err := db.Collection("organizations").FindOne(ctx, bson.M{"_id": a.ID}).Decode(&gotA); err != nil {
		t.Fatalf("reload org a: %v", err)
	}
	if err := db.Collection("organizations").FindOne(ctx, bson.M{"_id": b.ID}).Decode(&gotB); err != nil {
		t.Fatalf("reload org b: %v", err)
	}

	if gotA.MemberCount != 1 || gotA.GuardCount != 0 {
		t.Errorf("org a counters = %d/%d, want 1/0", gotA.MemberCount, gotA.GuardCount)
	}
	if gotB.MemberCount != 0 || gotB.GuardCount != 1 {
		t.Errorf("org b counters = %d/%d, want 0/1", gotB.MemberCount, gotB.GuardCount)
	}
}
