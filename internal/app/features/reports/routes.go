// internal/app/features/reports/routes.go
package reports

import (
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Routes mounts the reports endpoints. Every console role sees them.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Get("/", h.Serve)
		pr.Get("/overview", h.ServeOverview)
		pr.Get("/incidents", h.ServeIncidents)
		pr.Get("/group-activity", h.ServeGroupActivity)
		pr.Get("/user-activity", h.ServeUserActivity)
		pr.Get("/compliance", h.ServeCompliance)
		pr.Get("/export", h.HandleExport)
		pr.Get("/overview/export", h.HandleOverviewExport)
		pr.Get("/incidents/export", h.HandleIncidentsExport)
	})

	return r
}
