// internal/domain/models/notification.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification is one console notification shown on the dashboard.
type Notification struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type           string              `bson:"type" json:"type"` // info | warning | error | success
	Title          string              `bson:"title" json:"title"`
	Message        string              `bson:"message" json:"message"`
	Timestamp      time.Time           `bson:"timestamp" json:"timestamp"`
	Read           bool                `bson:"read" json:"read"`
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty" json:"organizationId,omitempty"`
}
