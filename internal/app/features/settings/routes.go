// internal/app/features/settings/routes.go
package settings

import (
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Routes mounts the settings endpoints. Super Admin only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("Super Admin"))

		pr.Get("/", h.ServeSettings)
		pr.Put("/{key}", h.HandleUpdate)
		pr.Post("/broadcast", h.HandleBroadcast)
	})

	return r
}
