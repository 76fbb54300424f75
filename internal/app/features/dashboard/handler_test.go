package dashboard_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/safegate/console/internal/app/features/dashboard"
	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/testutil"
	"go.uber.org/zap"
)

func TestHandleStats(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	active := fx.CreateOrganizationWithStatus(ctx, "active-org", status.Active, 100, 10, 4)
	fx.CreateOrganizationWithStatus(ctx, "inactive-org", status.Inactive, 30, 3, 1)

	now := time.Now().UTC()
	fx.CreateAccessLog(ctx, active.ID, now.Add(-1*time.Hour))
	fx.CreateAccessLog(ctx, active.ID, now.Add(-23*time.Hour))
	fx.CreateAccessLog(ctx, active.ID, now.Add(-48*time.Hour)) // outside the 24h window

	h := dashboard.NewHandler(db, zap.NewNop())
	req := httptest.NewRequest("GET", "/api/dashboard/stats", nil)
	rec := httptest.NewRecorder()

	h.HandleStats(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var stats dashboard.Stats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}

	if stats.TotalOrganizations != 2 {
		t.Errorf("TotalOrganizations = %d, want 2", stats.TotalOrganizations)
	}
	if stats.ActiveOrganizations != 1 {
		t.Errorf("ActiveOrganizations = %d, want 1", stats.ActiveOrganizations)
	}
	if stats.InactiveOrganizations != 1 {
		t.Errorf("InactiveOrganizations = %d, want 1", stats.InactiveOrganizations)
	}
	if stats.TotalUsers != 143 {
		t.Errorf("TotalUsers = %d, want 143", stats.TotalUsers)
	}
	if stats.ActiveGuards != 10 {
		t.Errorf("ActiveGuards = %d, want guards of active orgs only (10)", stats.ActiveGuards)
	}
	if stats.RecentAccessLogs != 2 {
		t.Errorf("RecentAccessLogs = %d, want 2 within 24h", stats.RecentAccessLogs)
	}
	if stats.SystemHealth != "warning" {
		t.Errorf("SystemHealth = %q, want warning at 50%% active", stats.SystemHealth)
	}
}
