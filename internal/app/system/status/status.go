// Package status defines the lifecycle status values used across
// organizations, users, and library documents.
package status

// Status values.
const (
	Active    = "active"
	Inactive  = "inactive"
	Suspended = "suspended"
)

// OrganizationValues lists every legal organization status.
// Suspended is settable only through the status-patch endpoint; the
// console toggle flips active/inactive.
func OrganizationValues() []string {
	return []string{Active, Inactive, Suspended}
}

// IsValidOrganization reports whether s is a legal organization status.
func IsValidOrganization(s string) bool {
	return s == Active || s == Inactive || s == Suspended
}

// IsValidUser reports whether s is a legal user or document status.
func IsValidUser(s string) bool {
	return s == Active || s == Inactive
}
