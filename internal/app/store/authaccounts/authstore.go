// Package authstore is the adapter for the managed authentication
// service: account creation, credential verification, and the
// compensating delete used when a profile write fails after the account
// was already created.
package authstore

import (
	"context"
	"errors"
	"net/mail"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"github.com/safegate/console/internal/app/system/normalize"
	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength mirrors the managed auth service's weak-password rule.
const MinPasswordLength = 6

var (
	// ErrEmailInUse is returned when the email already has an account.
	ErrEmailInUse = errors.New("email already registered")
	// ErrInvalidEmail is returned for a syntactically invalid email.
	ErrInvalidEmail = errors.New("invalid email format")
	// ErrWeakPassword is returned for a password under the minimum length.
	ErrWeakPassword = errors.New("password is too weak")
	// ErrNotFound is returned when no account matches.
	ErrNotFound = errors.New("auth account not found")
	// ErrInvalidCredentials is returned when verification fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("auth_accounts")}
}

// CreateAccount registers a credential record and returns the assigned
// external uid. Uniqueness is enforced by the unique email index; a
// duplicate surfaces as ErrEmailInUse.
func (s *Store) CreateAccount(ctx context.Context, email, password, displayName string) (string, error) {
	email = normalize.Email(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	acct := models.AuthAccount{
		ID:           primitive.NewObjectID(),
		UID:          uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		DisplayName:  displayName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := s.c.InsertOne(ctx, acct); err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrEmailInUse
		}
		return "", err
	}
	return acct.UID, nil
}

// GetByEmail looks up an account by case-insensitive email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	var acct models.AuthAccount
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&acct)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &acct, nil
}

// All returns every credential record. Used by the reconciliation tool.
func (s *Store) All(ctx context.Context) ([]models.AuthAccount, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var accts []models.AuthAccount
	if err := cur.All(ctx, &accts); err != nil {
		return nil, err
	}
	return accts, nil
}

// Verify checks the password for an email and returns the account.
// Both unknown email and wrong password map to ErrInvalidCredentials.
func (s *Store) Verify(ctx context.Context, email, password string) (*models.AuthAccount, error) {
	acct, err := s.GetByEmail(ctx, email)
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(acct.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return acct, nil
}

// DeleteByUID removes an account by its external uid. This is the
// compensation path when a profile write fails after account creation.
func (s *Store) DeleteByUID(ctx context.Context, uid string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
