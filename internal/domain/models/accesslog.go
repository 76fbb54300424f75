// internal/domain/models/accesslog.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AccessLog is one gate entry/exit event recorded by a guard or scanner.
type AccessLog struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	OrganizationID primitive.ObjectID  `bson:"organization_id" json:"organizationId"`
	MemberID       *primitive.ObjectID `bson:"member_id,omitempty" json:"memberId,omitempty"`
	GuardID        *primitive.ObjectID `bson:"guard_id,omitempty" json:"guardId,omitempty"`
	AccessPointID  string              `bson:"access_point_id,omitempty" json:"accessPointId,omitempty"`

	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
	AccessGranted bool      `bson:"access_granted" json:"accessGranted"`
	Location      string    `bson:"location,omitempty" json:"location,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`

	AccessType         string `bson:"access_type,omitempty" json:"accessType,omitempty"`                 // entry | exit | both
	VerificationMethod string `bson:"verification_method,omitempty" json:"verificationMethod,omitempty"` // qr_scan | manual | card | biometric
}
