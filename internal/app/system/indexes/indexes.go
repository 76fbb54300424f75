// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent.
We aggregate errors so any problem is visible and startup can fail fast.

Note: there is deliberately no unique index on organizations.name; the
slug is unique by convention only. Email uniqueness lives on the
auth_accounts collection, not on user profiles.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureOrganizations(ctx, db); err != nil {
		problems = append(problems, "organizations: "+err.Error())
	}
	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureLibrary(ctx, db); err != nil {
		problems = append(problems, "library: "+err.Error())
	}
	if err := ensureAuthAccounts(ctx, db); err != nil {
		problems = append(problems, "auth_accounts: "+err.Error())
	}
	if err := ensureAccessLogs(ctx, db); err != nil {
		problems = append(problems, "access_logs: "+err.Error())
	}
	if err := ensureNotifications(ctx, db); err != nil {
		problems = append(problems, "notifications: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func createAll(ctx context.Context, db *mongo.Database, coll string, specs []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, specs)
	return err
}

func ensureOrganizations(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db, "organizations", []mongo.IndexModel{
		{Keys: bson.D{{Key: "name_ci", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db, "users", []mongo.IndexModel{
		{Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	})
}

func ensureLibrary(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db, "library", []mongo.IndexModel{
		{Keys: bson.D{{Key: "organization_id", Value: 1}}},
		{Keys: bson.D{{Key: "category", Value: 1}}},
	})
}

func ensureAuthAccounts(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db, "auth_accounts", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "uid", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_uid"),
		},
	})
}

func ensureAccessLogs(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db, "access_logs", []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "organization_id", Value: 1}, {Key: "timestamp", Value: -1}}},
	})
}

func ensureNotifications(ctx context.Context, db *mongo.Database) error {
	return createAll(ctx, db, "notifications", []mongo.IndexModel{
		{Keys: bson.D{{Key: "timestamp", Value: -1}}},
		{Keys: bson.D{{Key: "read", Value: 1}}},
	})
}
