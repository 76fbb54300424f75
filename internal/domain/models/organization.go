// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is one managed residential community. It is the
// multi-tenancy boundary for users and library documents.
//
// The member/guard/access-point counters are denormalized onto the
// organization record. Creation zeroes them; they are refreshed by the
// operator tooling (orgutil.Recount), not on every user write.
type Organization struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Name        string             `bson:"name" json:"name"` // internal slug, unique by convention only
	NameCI      string             `bson:"name_ci" json:"-"`
	DisplayName string             `bson:"display_name" json:"displayName"`
	Address     string             `bson:"address" json:"address"`
	City        string             `bson:"city" json:"city"`
	State       string             `bson:"state" json:"state"`
	ZipCode     string             `bson:"zip_code" json:"zipCode"`
	Country     string             `bson:"country" json:"country"`

	ContactInfo ContactInfo          `bson:"contact_info" json:"contactInfo"`
	Settings    OrganizationSettings `bson:"settings" json:"settings"`

	Status string `bson:"status" json:"status"` // active | inactive | suspended

	MemberCount      int `bson:"member_count" json:"memberCount"`
	GuardCount       int `bson:"guard_count" json:"guardCount"`
	AccessPointCount int `bson:"access_point_count" json:"accessPointCount"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
	CreatedBy string    `bson:"created_by,omitempty" json:"createdBy,omitempty"`
}

// ContactInfo holds the community's public contact details.
type ContactInfo struct {
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone" json:"phone"`
	Website string `bson:"website,omitempty" json:"website,omitempty"`
}

// OrganizationSettings groups the per-community configuration blocks.
type OrganizationSettings struct {
	Theme         ThemeSettings        `bson:"theme" json:"theme"`
	Security      SecuritySettings     `bson:"security" json:"security"`
	Notifications NotificationSettings `bson:"notifications" json:"notifications"`
}

type ThemeSettings struct {
	PrimaryColor   string `bson:"primary_color" json:"primaryColor"`
	SecondaryColor string `bson:"secondary_color" json:"secondaryColor"`
	Logo           string `bson:"logo,omitempty" json:"logo,omitempty"`
}

type SecuritySettings struct {
	QRCodeExpiryHours    int    `bson:"qr_code_expiry_hours" json:"qrCodeExpiryHours"`
	RequirePhotoForGuest bool   `bson:"require_photo_for_guests" json:"requirePhotoForGuests"`
	MaxGuestsPerResident int    `bson:"max_guests_per_resident" json:"maxGuestsPerResident"`
	CommunityCode        string `bson:"community_code" json:"communityCode"`
}

type NotificationSettings struct {
	EmailNotifications bool `bson:"email_notifications" json:"emailNotifications"`
	PushNotifications  bool `bson:"push_notifications" json:"pushNotifications"`
	SMSNotifications   bool `bson:"sms_notifications" json:"smsNotifications"`
}
