// internal/app/features/groups/routes.go
package groups

import (
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Routes mounts the group endpoints.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("Super Admin", "Group Admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/export", h.HandleExport)
		pr.Get("/{id}", h.ServeDetail)

		pr.Post("/", h.HandleCreate)
		pr.Post("/{id}/requests/{userID}/approve", h.HandleJoinRequest(true))
		pr.Post("/{id}/requests/{userID}/reject", h.HandleJoinRequest(false))
	})

	return r
}
