package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/waffle/pantry/text"
	"github.com/safegate/console/internal/app/system/normalize"
	"github.com/safegate/console/internal/app/system/status"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrNotFound is returned when an id does not resolve to a user.
	ErrNotFound = errors.New("user not found")
	// ErrBadRole is returned for a role outside the known set.
	ErrBadRole = errors.New(`role must be "member"|"guard"|"admin"|"super_admin"`)
	// ErrBadStatus is returned for a status outside active/inactive.
	ErrBadStatus = errors.New(`status must be "active"|"inactive"`)
	// ErrOrgNeeded is returned when a member or guard has no organization.
	ErrOrgNeeded = errors.New("member/guard must have organizationId")
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user profile by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

// All returns every user profile.
func (s *Store) All(ctx context.Context) ([]models.User, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Create inserts a new user profile after normalizing & validating fields.
// Email uniqueness is NOT enforced here; that is the auth layer's job. A
// profile can exist without an auth account and vice versa.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.Name = normalize.Name(u.Name)
	u.NameCI = text.Fold(u.Name)
	u.Email = normalize.Email(u.Email)
	if u.Status == "" {
		u.Status = status.Active
	}

	switch u.Role {
	case "member", "guard", "admin", "super_admin":
	default:
		return models.User{}, ErrBadRole
	}

	if !status.IsValidUser(u.Status) {
		return models.User{}, ErrBadStatus
	}

	if (u.Role == "member" || u.Role == "guard") && u.OrganizationID == nil {
		return models.User{}, ErrOrgNeeded
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Update holds the fields a PUT may change.
type Update struct {
	Name           string
	Email          string
	Role           string
	Status         string
	Phone          string
	Address        string
	BadgeNumber    string
	ShiftHours     string
	HomeNumber     string
	HomeAddress    string
	OrganizationID *primitive.ObjectID
}

// Update replaces the listed fields and refreshes updated_at. There is no
// prior existence check: updating an absent id matches nothing and
// reports success, mirroring the console's PUT contract.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{
		"name":       normalize.Name(upd.Name),
		"name_ci":    text.Fold(normalize.Name(upd.Name)),
		"email":      normalize.Email(upd.Email),
		"role":       upd.Role,
		"updated_at": time.Now().UTC(),
	}
	if upd.Status != "" {
		set["status"] = upd.Status
	}
	if upd.Phone != "" {
		set["phone"] = upd.Phone
	}
	if upd.Address != "" {
		set["address"] = upd.Address
	}
	if upd.BadgeNumber != "" {
		set["badge_number"] = upd.BadgeNumber
	}
	if upd.ShiftHours != "" {
		set["shift_hours"] = upd.ShiftHours
	}
	if upd.HomeNumber != "" {
		set["home_number"] = upd.HomeNumber
	}
	if upd.HomeAddress != "" {
		set["home_address"] = upd.HomeAddress
	}
	if upd.OrganizationID != nil {
		set["organization_id"] = *upd.OrganizationID
	}

	_, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// TouchLastLogin stamps last_login for the profile linked to an auth uid.
func (s *Store) TouchLastLogin(ctx context.Context, uid string) error {
	_, err := s.c.UpdateOne(ctx, bson.M{"firebase_uid": uid}, bson.M{
		"$set": bson.M{"last_login": time.Now().UTC()},
	})
	return err
}

// Delete removes the profile document only. The auth account, if any, is
// left in place; reconciliation is the operator tooling's job.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

// CountByOrganization counts profiles with the given role in one
// organization.
func (s *Store) CountByOrganization(ctx context.Context, orgID primitive.ObjectID, role string) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"organization_id": orgID, "role": role})
}
