// internal/app/features/groups/actions.go
package groups

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/authz"
	"github.com/suchak/adminconsole/internal/app/system/htmlsanitize"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/domain/models"
)

type createRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// HandleCreate handles POST /api/groups.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	role, name, _ := authz.UserCtx(r)
	var groupID string
	next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
		adminstate.CreateGroup(htmlsanitize.Strip(req.Name), models.GroupType(req.Type),
			authz.Actor(role, name), time.Now(), &groupID))
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Audit.Mirror(next.AuditLogs[0])

	group, _ := next.GroupByID(groupID)
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusCreated, map[string]models.Group{"group": group})
}

// HandleJoinRequest handles
// POST /api/groups/{id}/requests/{userID}/{approve|reject}.
func (h *Handler) HandleJoinRequest(approve bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, name, _ := authz.UserCtx(r)
		groupID := chi.URLParam(r, "id")
		userID := chi.URLParam(r, "userID")

		next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
			adminstate.ResolveJoinRequest(groupID, userID, approve, authz.Actor(role, name)))
		if err != nil {
			respond.Err(w, h.Log, err)
			return
		}
		h.Audit.Mirror(next.AuditLogs[0])

		group, _ := next.GroupByID(groupID)
		respond.SetVersion(w, version)
		respond.JSON(w, http.StatusOK, map[string]models.Group{"group": group})
	}
}
