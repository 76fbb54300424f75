package librarystore

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

// ErrNotFound is returned when an id does not resolve to a document.
var ErrNotFound = errors.New("library document not found")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("library")}
}

// Create inserts a new library document record. The file itself must
// already be in blob storage; StoragePath/FileURL point at it.
func (s *Store) Create(ctx context.Context, doc models.LibraryDocument) (models.LibraryDocument, error) {
	now := time.Now().UTC()
	doc.ID = primitive.NewObjectID()
	doc.TitleCI = text.Fold(doc.Title)
	if doc.Status == "" {
		doc.Status = status.Active
	}
	doc.CreatedAt = now
	doc.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, doc); err != nil {
		return models.LibraryDocument{}, err
	}
	return doc, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.LibraryDocument, error) {
	var doc models.LibraryDocument
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return models.LibraryDocument{}, ErrNotFound
	}
	if err != nil {
		return models.LibraryDocument{}, err
	}
	return doc, nil
}

// All returns every library document, newest first.
func (s *Store) All(ctx context.Context) ([]models.LibraryDocument, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []models.LibraryDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// Update holds the metadata fields a PUT may change. The file fields are
// set together when a replacement file was uploaded.
type Update struct {
	Title          string
	Description    string
	Category       string
	Status         string
	OrganizationID *primitive.ObjectID

	// Replacement file, all-or-nothing.
	FileURL     string
	FileName    string
	FileSize    int64
	FileType    string
	StoragePath string
}

// Update merges the provided fields and refreshes updated_at. Returns
// ErrNotFound when the id does not exist.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, upd Update) error {
	set := bson.M{
		"title":       upd.Title,
		"title_ci":    text.Fold(upd.Title),
		"description": upd.Description,
		"updated_at":  time.Now().UTC(),
	}
	if upd.Category != "" {
		set["category"] = upd.Category
	}
	if upd.Status != "" {
		set["status"] = upd.Status
	}
	if upd.OrganizationID != nil {
		set["organization_id"] = *upd.OrganizationID
	}
	if upd.StoragePath != "" {
		set["file_url"] = upd.FileURL
		set["file_name"] = upd.FileName
		set["file_size"] = upd.FileSize
		set["file_type"] = upd.FileType
		set["storage_path"] = upd.StoragePath
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

// Delete removes a document record by ID. Returns the number of
// documents deleted (0 or 1). The blob is the caller's responsibility.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of documents matching the given filter.
func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}
