// internal/app/system/orgutil/counts.go
package orgutil

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Aggregator is a minimal interface satisfied by *mongo.Database.
// It allows unit-testing aggregation helpers with a fake.
type Aggregator interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

// AggregateCountByField computes counts grouped by a field.
//
//	coll     – collection name (e.g. "users")
//	match    – base match filter (e.g. {"role":"guard"})
//	groupKey – field to group on (e.g. "organization_id")
//
// Returns a map keyed by ObjectID to count.
func AggregateCountByField(
	ctx context.Context,
	db Aggregator,
	coll string,
	match bson.M,
	groupKey string,
) (map[primitive.ObjectID]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + groupKey},
			{Key: "n", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cur, err := db.Collection(coll).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make(map[primitive.ObjectID]int64)
	for cur.Next(ctx) {
		var row struct {
			ID primitive.ObjectID `bson:"_id"`
			N  int64              `bson:"n"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out[row.ID] = row.N
	}
	return out, cur.Err()
}

// Recount refreshes the denormalized member/guard counters of one
// organization from the users collection. The counters are not maintained
// transactionally on user writes, so drift is expected; this is the
// reconciliation path used by the operator tooling.
func Recount(ctx context.Context, db *mongo.Database, orgID primitive.ObjectID) error {
	members, err := db.Collection("users").CountDocuments(ctx,
		bson.M{"organization_id": orgID, "role": "member"})
	if err != nil {
		return err
	}
	guards, err := db.Collection("users").CountDocuments(ctx,
		bson.M{"organization_id": orgID, "role": "guard"})
	if err != nil {
		return err
	}

	_, err = db.Collection("organizations").UpdateByID(ctx, orgID, bson.M{
		"$set": bson.M{
			"member_count": members,
			"guard_count":  guards,
			"updated_at":   time.Now().UTC(),
		},
	})
	return err
}

// RecountAll refreshes the counters of every organization with two
// grouped aggregations instead of per-organization count queries.
func RecountAll(ctx context.Context, db *mongo.Database) error {
	memberCounts, err := AggregateCountByField(ctx, db, "users",
		bson.M{"role": "member"}, "organization_id")
	if err != nil {
		return err
	}
	guardCounts, err := AggregateCountByField(ctx, db, "users",
		bson.M{"role": "guard"}, "organization_id")
	if err != nil {
		return err
	}

	cur, err := db.Collection("organizations").Find(ctx, bson.M{})
	if err != nil {
		return err
	}
	defer cur.Close(ctx)

	now := time.Now().UTC()
	for cur.Next(ctx) {
		var org struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&org); err != nil {
			return err
		}
		_, err := db.Collection("organizations").UpdateByID(ctx, org.ID, bson.M{
			"$set": bson.M{
				"member_count": memberCounts[org.ID],
				"guard_count":  guardCounts[org.ID],
				"updated_at":   now,
			},
		})
		if err != nil {
			return err
		}
	}
	return cur.Err()
}
