// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	accesslogsfeature "github.com/safegate/console/internal/app/features/accesslogs"
	authapifeature "github.com/safegate/console/internal/app/features/authapi"
	dashboardfeature "github.com/safegate/console/internal/app/features/dashboard"
	healthfeature "github.com/safegate/console/internal/app/features/health"
	libraryfeature "github.com/safegate/console/internal/app/features/library"
	notificationsfeature "github.com/safegate/console/internal/app/features/notifications"
	organizationsfeature "github.com/safegate/console/internal/app/features/organizations"
	usersfeature "github.com/safegate/console/internal/app/features/users"
	"github.com/safegate/console/internal/app/system/auth"
	"github.com/safegate/console/internal/app/system/blob"
	"github.com/safegate/console/internal/app/system/metrics"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// SafeGate mounts the JSON API feature routers under /api, the health
// and metrics endpoints, and a static file server for the uploaded
// library documents.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	storage, err := blob.NewLocalStore(appCfg.StorageLocalPath, appCfg.StorageLocalURL)
	if err != nil {
		logger.Error("blob store init failed", zap.Error(err))
		return nil, err
	}
	db := deps.SafeGateMongoDatabase

	r := chi.NewRouter()

	// Request counters and latency histograms for every route.
	r.Use(metrics.Middleware)

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.SafeGateMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler())

	// Uploaded library files, served with pre-compressed file support
	r.Handle(appCfg.StorageLocalURL+"/*", fileserver.Handler(appCfg.StorageLocalURL, appCfg.StorageLocalPath))

	// Console sign-in
	authHandler := authapifeature.NewHandler(db, sessionMgr, logger)
	r.Mount("/api/auth", authapifeature.Routes(authHandler))

	// Organization management
	orgHandler := organizationsfeature.NewHandler(db, logger)
	r.Mount("/api/organizations", organizationsfeature.Routes(orgHandler))

	// User management
	usersHandler := usersfeature.NewHandler(db, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler))

	// Document library
	libraryHandler := libraryfeature.NewHandler(db, storage, logger)
	r.Mount("/api/library", libraryfeature.Routes(libraryHandler))

	// Dashboard stats
	dashboardHandler := dashboardfeature.NewHandler(db, logger)
	r.Mount("/api/dashboard", dashboardfeature.Routes(dashboardHandler))

	// Gate event log (read-only)
	accessLogsHandler := accesslogsfeature.NewHandler(db, logger)
	r.Mount("/api/accesslogs", accesslogsfeature.Routes(accessLogsHandler))

	// Admin notifications
	notificationsHandler := notificationsfeature.NewHandler(db, logger)
	r.Mount("/api/notifications", notificationsfeature.Routes(notificationsHandler))

	return r, nil
}
