// internal/app/features/users/actions.go
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/authz"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/domain/models"
)

// HandleAction handles POST /api/users/{id}/{approve|suspend|activate}.
func (h *Handler) HandleAction(action adminstate.UserAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, name, _ := authz.UserCtx(r)
		userID := chi.URLParam(r, "id")

		next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
			adminstate.SetUserStatus(userID, action, authz.Actor(role, name)))
		if err != nil {
			respond.Err(w, h.Log, err)
			return
		}
		h.Audit.Mirror(next.AuditLogs[0])

		user, _ := next.UserByID(userID)
		respond.SetVersion(w, version)
		respond.JSON(w, http.StatusOK, map[string]models.User{"user": user})
	}
}

type bulkRequest struct {
	IDs    []string `json:"ids"`
	Action string   `json:"action"`
}

type bulkResponse struct {
	Users []models.User `json:"users"`
}

// HandleBulk handles POST /api/users/bulk: one approve or suspend
// applied to every selected user in a single commit.
func (h *Handler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	role, name, _ := authz.UserCtx(r)
	next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
		adminstate.BulkSetUserStatus(req.IDs, adminstate.UserAction(req.Action), authz.Actor(role, name)))
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Audit.Mirror(next.AuditLogs[0])

	selected := make(map[string]struct{}, len(req.IDs))
	for _, id := range req.IDs {
		selected[id] = struct{}{}
	}
	updated := make([]models.User, 0, len(req.IDs))
	for _, u := range next.Users {
		if _, ok := selected[u.ID]; ok {
			updated = append(updated, u)
		}
	}

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, bulkResponse{Users: updated})
}
