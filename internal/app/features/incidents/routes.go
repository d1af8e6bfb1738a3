// internal/app/features/incidents/routes.go
package incidents

import (
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Routes mounts the incident queue endpoints.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("Super Admin", "Group Admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/export", h.HandleExport)
		pr.Get("/{id}", h.ServeDetail)

		pr.Post("/{id}/acknowledge", h.HandleTransition(adminstate.IncidentAcknowledge))
		pr.Post("/{id}/investigate", h.HandleTransition(adminstate.IncidentInvestigate))
		pr.Post("/{id}/resolve", h.HandleTransition(adminstate.IncidentResolve))
	})

	return r
}
