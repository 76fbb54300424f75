// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"
	"fmt"
	"os"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
// SafeGate makes sure the local library storage directory exists so the
// first upload doesn't fail on a missing path.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if err := os.MkdirAll(appCfg.StorageLocalPath, 0o755); err != nil {
		return fmt.Errorf("create storage directory %s: %w", appCfg.StorageLocalPath, err)
	}
	logger.Info("library storage ready", zap.String("path", appCfg.StorageLocalPath))
	return nil
}
