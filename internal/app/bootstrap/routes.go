// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	auditlogsfeature "github.com/suchak/adminconsole/internal/app/features/auditlogs"
	dashboardfeature "github.com/suchak/adminconsole/internal/app/features/dashboard"
	devicesfeature "github.com/suchak/adminconsole/internal/app/features/devices"
	groupsfeature "github.com/suchak/adminconsole/internal/app/features/groups"
	healthfeature "github.com/suchak/adminconsole/internal/app/features/health"
	incidentsfeature "github.com/suchak/adminconsole/internal/app/features/incidents"
	loginfeature "github.com/suchak/adminconsole/internal/app/features/login"
	logoutfeature "github.com/suchak/adminconsole/internal/app/features/logout"
	reportsfeature "github.com/suchak/adminconsole/internal/app/features/reports"
	settingsfeature "github.com/suchak/adminconsole/internal/app/features/settings"
	usersfeature "github.com/suchak/adminconsole/internal/app/features/users"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, the seed document load, and any
// Startup hooks have completed. Every console surface is a JSON API under
// /api; role checks live in the feature routers so each area declares who
// may reach it.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads SessionUser into context if signed in.
	// This makes the current operator available via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.State, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(sessionMgr, logger)
	r.Mount("/api/login", loginfeature.Routes(loginHandler))
	r.Get("/api/session", loginHandler.ServeSession)

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/api/logout", logoutfeature.Routes(logoutHandler))

	// Console areas
	dashboardHandler := dashboardfeature.NewHandler(deps.State, logger)
	r.Mount("/api/dashboard", dashboardfeature.Routes(dashboardHandler, sessionMgr))

	usersHandler := usersfeature.NewHandler(deps.State, deps.Audit, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler, sessionMgr))

	devicesHandler := devicesfeature.NewHandler(deps.State, deps.Audit, logger)
	r.Mount("/api/devices", devicesfeature.Routes(devicesHandler, sessionMgr))

	groupsHandler := groupsfeature.NewHandler(deps.State, deps.Audit, logger)
	r.Mount("/api/groups", groupsfeature.Routes(groupsHandler, sessionMgr))

	incidentsHandler := incidentsfeature.NewHandler(deps.State, deps.Audit, logger)
	r.Mount("/api/incidents", incidentsfeature.Routes(incidentsHandler, sessionMgr))

	auditLogsHandler := auditlogsfeature.NewHandler(deps.State, logger)
	r.Mount("/api/audit-logs", auditlogsfeature.Routes(auditLogsHandler, sessionMgr))

	reportsHandler := reportsfeature.NewHandler(deps.State, logger)
	r.Mount("/api/reports", reportsfeature.Routes(reportsHandler, sessionMgr))

	settingsHandler := settingsfeature.NewHandler(deps.State, deps.Audit, logger)
	r.Mount("/api/settings", settingsfeature.Routes(settingsHandler, sessionMgr))

	return r, nil
}
