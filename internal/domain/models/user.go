// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a person with a role in one organization: a resident
// (member), a gate guard, or a console admin.
//
// NOTE:
//   - The profile document and the managed-auth account are separate
//     records. FirebaseUID links the two and is empty when no auth
//     account was created for this profile.
//   - OrganizationID is a plain reference; deleting an organization does
//     not cascade here, so a dangling reference is possible.
type User struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name           string              `bson:"name" json:"name"`
	NameCI         string              `bson:"name_ci" json:"-"`
	Email          string              `bson:"email" json:"email"`
	Role           string              `bson:"role" json:"role"` // member | guard | admin | super_admin
	Status         string              `bson:"status" json:"status"`
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty" json:"organizationId,omitempty"`

	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address,omitempty" json:"address,omitempty"`

	// Guard fields
	BadgeNumber string `bson:"badge_number,omitempty" json:"badgeNumber,omitempty"`
	ShiftHours  string `bson:"shift_hours,omitempty" json:"shiftHours,omitempty"`

	// Member fields
	HomeNumber  string `bson:"home_number,omitempty" json:"homeNumber,omitempty"`
	HomeAddress string `bson:"home_address,omitempty" json:"homeAddress,omitempty"`

	FirebaseUID string `bson:"firebase_uid,omitempty" json:"firebaseUid,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updated_at" json:"updatedAt"`
	LastLogin *time.Time `bson:"last_login,omitempty" json:"lastLogin,omitempty"`
}
