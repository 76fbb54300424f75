// internal/app/features/library/handler.go
package library

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/safegate/console/internal/app/system/blob"
)

// Handler is the feature-level entry point for the document library.
type Handler struct {
	DB      *mongo.Database
	Storage blob.Store
	Log     *zap.Logger
}

// NewHandler constructs a new Library handler bound to a DB, blob store
// and logger.
func NewHandler(db *mongo.Database, storage blob.Store, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Storage: storage,
		Log:     logger,
	}
}
