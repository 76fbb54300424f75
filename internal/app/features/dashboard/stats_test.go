package dashboard

import (
	"testing"

	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/domain/models"
)

func org(st string, members, guards, accessPoints int) models.Organization {
	return models.Organization{
		Status:           st,
		MemberCount:      members,
		GuardCount:       guards,
		AccessPointCount: accessPoints,
	}
}

func TestComputeStats(t *testing.T) {
	orgs := []models.Organization{
		org(status.Active, 100, 10, 4),
		org(status.Active, 50, 5, 2),
		org(status.Inactive, 30, 3, 1),
		org(status.Suspended, 20, 2, 1),
	}

	got := computeStats(orgs, 42)

	if got.TotalOrganizations != 4 {
		t.Errorf("TotalOrganizations = %d, want 4", got.TotalOrganizations)
	}
	if got.ActiveOrganizations != 2 {
		t.Errorf("ActiveOrganizations = %d, want 2", got.ActiveOrganizations)
	}
	// Suspended counts as inactive: everything that is not active.
	if got.InactiveOrganizations != 2 {
		t.Errorf("InactiveOrganizations = %d, want 2", got.InactiveOrganizations)
	}
	if got.TotalUsers != 220 {
		t.Errorf("TotalUsers = %d, want 220", got.TotalUsers)
	}
	if got.TotalAccessPoints != 8 {
		t.Errorf("TotalAccessPoints = %d, want 8", got.TotalAccessPoints)
	}
	if got.ActiveGuards != 15 {
		t.Errorf("ActiveGuards = %d, want 15", got.ActiveGuards)
	}
	if got.RecentAccessLogs != 42 {
		t.Errorf("RecentAccessLogs = %d, want 42", got.RecentAccessLogs)
	}
}

func TestComputeStatsSuspendedIsInactive(t *testing.T) {
	orgs := []models.Organization{
		org(status.Active, 10, 1, 1),
		org(status.Inactive, 10, 1, 1),
		org(status.Suspended, 10, 1, 1),
	}

	got := computeStats(orgs, 0)

	if got.ActiveOrganizations != 1 {
		t.Errorf("ActiveOrganizations = %d, want 1", got.ActiveOrganizations)
	}
	if got.InactiveOrganizations != got.TotalOrganizations-got.ActiveOrganizations {
		t.Errorf("InactiveOrganizations = %d, want total minus active (%d)",
			got.InactiveOrganizations, got.TotalOrganizations-got.ActiveOrganizations)
	}
	if got.InactiveOrganizations != 2 {
		t.Errorf("InactiveOrganizations = %d, want 2 with one suspended org", got.InactiveOrganizations)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	got := computeStats(nil, 0)
	if got.TotalOrganizations != 0 || got.TotalUsers != 0 {
		t.Errorf("empty input produced non-zero totals: %+v", got)
	}
	if got.SystemHealth != "critical" {
		t.Errorf("SystemHealth = %q, want critical with no active orgs", got.SystemHealth)
	}
}

func TestClassifyHealth(t *testing.T) {
	cases := []struct {
		active, total int
		want          string
	}{
		{0, 0, "critical"},
		{0, 5, "critical"},
		{3, 5, "warning"},  // 60% active
		{7, 10, "warning"}, // 70% active
		{4, 5, "good"},     // 80%, below total
		{9, 10, "good"},
		{5, 5, "excellent"},
		{1, 1, "excellent"},
	}
	for _, tc := range cases {
		if got := classifyHealth(tc.active, tc.total); got != tc.want {
			t.Errorf("classifyHealth(%d, %d) = %q, want %q", tc.active, tc.total, got, tc.want)
		}
	}
}
