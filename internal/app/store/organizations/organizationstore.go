// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

// ErrNotFound is returned when an id does not resolve to an organization.
var ErrNotFound = errors.New("organization not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

// Create inserts a new organization. Status is forced to active and the
// denormalized counters are forced to zero regardless of what the caller
// supplied.
func (s *Store) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	org.NameCI = text.Fold(org.Name)
	org.Status = status.Active
	org.MemberCount = 0
	org.GuardCount = 0
	org.AccessPointCount = 0
	org.CreatedAt = now
	org.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, org); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	var org models.Organization
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&org)
	if err == mongo.ErrNoDocuments {
		return models.Organization{}, ErrNotFound
	}
	if err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// All returns every organization.
func (s *Store) All(ctx context.Context) ([]models.Organization, error) {
	return s.Find(ctx, bson.M{})
}

// Update holds the fields a full-document update may change. Pointer
// fields distinguish "not provided" from a zero value; the immutable
// fields (created_at, created_by) and the counters are never touched here.
type Update struct {
	Name        string
	DisplayName string
	Address     string
	City        string
	State       string
	ZipCode     string
	Country     string
	Status      string
	ContactInfo *models.ContactInfo
	Settings    *models.OrganizationSettings
}

// Update merges the provided fields into the document and refreshes
// updated_at. Returns ErrNotFound when the id does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if upd.Name != "" {
		set["name"] = upd.Name
		set["name_ci"] = text.Fold(upd.Name)
	}
	if upd.DisplayName != "" {
		set["display_name"] = upd.DisplayName
	}
	if upd.Address != "" {
		set["address"] = upd.Address
	}
	if upd.City != "" {
		set["city"] = upd.City
	}
	if upd.State != "" {
		set["state"] = upd.State
	}
	if upd.ZipCode != "" {
		set["zip_code"] = upd.ZipCode
	}
	if upd.Country != "" {
		set["country"] = upd.Country
	}
	if upd.Status != "" {
		set["status"] = upd.Status
	}
	if upd.ContactInfo != nil {
		set["contact_info"] = *upd.ContactInfo
	}
	if upd.Settings != nil {
		set["settings"] = *upd.Settings
	}

	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateStatus mutates only the lifecycle status. The caller validates
// the value; this is the status-patch path, distinct from Update.
func (s *Store) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus string) error {
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"status":     newStatus,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an organization by ID. Returns the number of documents
// deleted (0 or 1). Dependent users and library documents are NOT removed.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Find returns organizations matching the given filter with optional find
// options. The caller builds the filter and options.
func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Organization, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orgs []models.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// Count returns the number of organizations matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
