// internal/app/features/auditlogs/routes.go
package auditlogs

import (
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Routes mounts the audit trail endpoints. Group Admins do not see the
// trail; it belongs to Super Admins and Auditors.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("Super Admin", "Auditor"))

		pr.Get("/", h.ServeList)
		pr.Get("/export", h.HandleExport)
	})

	return r
}
