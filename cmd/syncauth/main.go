// Command syncauth reconciles user profiles with their auth accounts and
// refreshes the denormalized organization counters.
//
// Profiles without a linked auth account are linked by email when an
// account already exists, or get a new account with a temporary
// password. Auth accounts whose uid matches no profile are reported but
// left alone; deleting credentials is an operator decision.
//
// Connection settings come from SAFEGATE_MONGO_URI and
// SAFEGATE_MONGO_DATABASE.
package main

import (
	"context"
	"os"
	"time"

	authstore "github.com/safegate/console/internal/app/store/authaccounts"
	userstore "github.com/safegate/console/internal/app/store/users"
	"github.com/safegate/console/internal/app/system/orgutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const tempPassword = "changeme-safegate"

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	uri := os.Getenv("SAFEGATE_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("SAFEGATE_MONGO_DATABASE")
	if dbName == "" {
		dbName = "safegate"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer client.Disconnect(ctx)
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("mongo ping failed", zap.Error(err))
	}

	db := client.Database(dbName)
	if err := sync(ctx, db, logger); err != nil {
		logger.Fatal("sync failed", zap.Error(err))
	}
	logger.Info("sync complete", zap.String("database", dbName))
}

func sync(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	users := userstore.New(db)
	accounts := authstore.New(db)

	profiles, err := users.All(ctx)
	if err != nil {
		return err
	}
	accts, err := accounts.All(ctx)
	if err != nil {
		return err
	}

	byUID := make(map[string]bool, len(accts))
	uidByEmail := make(map[string]string, len(accts))
	for _, a := range accts {
		byUID[a.UID] = true
		uidByEmail[a.Email] = a.UID
	}

	profileUIDs := make(map[string]bool, len(profiles))
	linked, created := 0, 0

	for _, p := range profiles {
		if p.FirebaseUID != "" && byUID[p.FirebaseUID] {
			profileUIDs[p.FirebaseUID] = true
			continue
		}

		uid, ok := uidByEmail[p.Email]
		if !ok {
			uid, err = accounts.CreateAccount(ctx, p.Email, tempPassword, p.Name)
			if err != nil {
				logger.Warn("could not create auth account",
					zap.String("user_id", p.ID.Hex()), zap.String("email", p.Email), zap.Error(err))
				continue
			}
			created++
			logger.Info("created auth account",
				zap.String("user_id", p.ID.Hex()), zap.String("uid", uid))
		}

		_, err := db.Collection("users").UpdateByID(ctx, p.ID, bson.M{
			"$set": bson.M{"firebase_uid": uid, "updated_at": time.Now().UTC()},
		})
		if err != nil {
			return err
		}
		linked++
		profileUIDs[uid] = true
	}

	orphans := 0
	for _, a := range accts {
		if !profileUIDs[a.UID] {
			orphans++
			logger.Warn("auth account has no profile",
				zap.String("uid", a.UID), zap.String("email", a.Email))
		}
	}

	logger.Info("reconciliation done",
		zap.Int("profiles", len(profiles)),
		zap.Int("linked", linked),
		zap.Int("accounts_created", created),
		zap.Int("orphaned_accounts", orphans))

	return orgutil.RecountAll(ctx, db)
}
