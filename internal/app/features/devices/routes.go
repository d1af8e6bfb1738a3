// internal/app/features/devices/routes.go
package devices

import (
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Routes mounts the device fleet endpoints.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("Super Admin", "Group Admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/export", h.HandleExport)
		pr.Get("/{id}", h.ServeDetail)

		pr.Post("/{id}/quarantine", h.HandleQuarantine)
		pr.Post("/{id}/attest", h.HandleAttest)
	})

	return r
}
