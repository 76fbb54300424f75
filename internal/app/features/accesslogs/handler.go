// internal/app/features/accesslogs/handler.go
package accesslogs

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the access-log read API. The logs themselves are
// written by the gate devices through the managed backend; the console
// only reads them.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}
