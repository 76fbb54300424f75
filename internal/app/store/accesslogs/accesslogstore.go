package accesslogstore

import (
	"context"
	"time"

	"github.com/safegate/console/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("access_logs")}
}

// Insert records one gate event. Used by the seeding tooling; the gate
// devices write through the managed backend directly.
func (s *Store) Insert(ctx context.Context, log models.AccessLog) (models.AccessLog, error) {
	log.ID = primitive.NewObjectID()
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, log); err != nil {
		return models.AccessLog{}, err
	}
	return log, nil
}

// Recent returns the newest events up to limit.
func (s *Store) Recent(ctx context.Context, limit int64) ([]models.AccessLog, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var logs []models.AccessLog
	if err := cur.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

// CountSince counts events with a timestamp at or after t.
func (s *Store) CountSince(ctx context.Context, t time.Time) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"timestamp": bson.M{"$gte": t}})
}
