package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateOrganization creates a test organization with the given slug and
// display name. Returns the created organization with its generated ID.
func (f *Fixtures) CreateOrganization(ctx context.Context, name, displayName string) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:          primitive.NewObjectID(),
		Name:        name,
		NameCI:      text.Fold(name),
		DisplayName: displayName,
		Address:     "1 Test Street",
		City:        "Test City",
		State:       "TS",
		ZipCode:     "00000",
		Country:     "MX",
		ContactInfo: models.ContactInfo{
			Email: name + "@example.com",
			Phone: "+52 555 000 0000",
		},
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("organizations").InsertOne(ctx, org); err != nil {
		f.t.Fatalf("failed to create test organization: %v", err)
	}
	return org
}

// CreateOrganizationWithStatus creates a test organization with the given
// lifecycle status and counters.
func (f *Fixtures) CreateOrganizationWithStatus(ctx context.Context, name, orgStatus string, members, guards, accessPoints int) models.Organization {
	f.t.Helper()

	org := f.CreateOrganization(ctx, name, name)
	org.Status = orgStatus
	org.MemberCount = members
	org.GuardCount = guards
	org.AccessPointCount = accessPoints

	if _, err := f.db.Collection("organizations").ReplaceOne(ctx,
		map[string]any{"_id": org.ID}, org); err != nil {
		f.t.Fatalf("failed to update test organization: %v", err)
	}
	return org
}

// CreateUser creates a test user with the given parameters.
// For members and guards, orgID must be provided.
func (f *Fixtures) CreateUser(ctx context.Context, name, email, role string, orgID *primitive.ObjectID) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	user := models.User{
		ID:             primitive.NewObjectID(),
		Name:           name,
		NameCI:         text.Fold(name),
		Email:          email,
		Role:           role,
		Status:         "active",
		OrganizationID: orgID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateLibraryDocument creates a test library document record pointing
// at the given storage path.
func (f *Fixtures) CreateLibraryDocument(ctx context.Context, title string, orgID primitive.ObjectID, storagePath string) models.LibraryDocument {
	f.t.Helper()

	now := time.Now().UTC()
	doc := models.LibraryDocument{
		ID:               primitive.NewObjectID(),
		Title:            title,
		TitleCI:          text.Fold(title),
		Description:      "Test document description",
		Category:         "reglamentos",
		OrganizationID:   orgID,
		OrganizationName: "Test Org",
		FileURL:          "/files/library/" + storagePath,
		FileName:         "test.pdf",
		FileSize:         1024,
		FileType:         "application/pdf",
		StoragePath:      storagePath,
		Status:           "active",
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if _, err := f.db.Collection("library").InsertOne(ctx, doc); err != nil {
		f.t.Fatalf("failed to create test library document: %v", err)
	}
	return doc
}

// CreateAccessLog creates a test access log with the given timestamp.
func (f *Fixtures) CreateAccessLog(ctx context.Context, orgID primitive.ObjectID, ts time.Time) models.AccessLog {
	f.t.Helper()

	log := models.AccessLog{
		ID:             primitive.NewObjectID(),
		OrganizationID: orgID,
		Timestamp:      ts,
		AccessGranted:  true,
		AccessType:     "entry",
	}

	if _, err := f.db.Collection("access_logs").InsertOne(ctx, log); err != nil {
		f.t.Fatalf("failed to create test access log: %v", err)
	}
	return log
}
