// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Routes mounts the user directory under the caller's path. Typically:
// r.Mount("/api/users", users.Routes(handler, sm))
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("Super Admin", "Group Admin"))

		pr.Get("/", h.ServeList)
		pr.Get("/export", h.HandleExport)
		pr.Get("/{id}", h.ServeDetail)

		pr.Post("/bulk", h.HandleBulk)
		pr.Post("/{id}/approve", h.HandleAction(adminstate.UserApprove))
		pr.Post("/{id}/suspend", h.HandleAction(adminstate.UserSuspend))
		pr.Post("/{id}/activate", h.HandleAction(adminstate.UserActivate))
	})

	return r
}
