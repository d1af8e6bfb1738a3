// internal/app/features/settings/handler.go
package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/auditlog"
	"github.com/suchak/adminconsole/internal/app/system/authz"
	"github.com/suchak/adminconsole/internal/app/system/htmlsanitize"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves platform settings and the emergency broadcast, both
// Super Admin territory.
type Handler struct {
	State *adminstate.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{State: state, Audit: audit, Log: logger}
}

// ServeSettings handles GET /api/settings.
func (h *Handler) ServeSettings(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string]models.ConsoleSettings{"settings": doc.Settings})
}

type updateRequest struct {
	Value any `json:"value"`
}

// HandleUpdate handles PUT /api/settings/{key}. One key per request,
// each change individually audited.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	role, name, _ := authz.UserCtx(r)
	next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
		adminstate.UpdateSetting(chi.URLParam(r, "key"), req.Value, authz.Actor(role, name)))
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Audit.Mirror(next.AuditLogs[0])

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string]models.ConsoleSettings{"settings": next.Settings})
}

type broadcastRequest struct {
	Message  string `json:"message"`
	Priority string `json:"priority"`
}

// HandleBroadcast handles POST /api/settings/broadcast. The broadcast
// is recorded in the audit trail; delivery to user devices happens
// outside the console.
func (h *Handler) HandleBroadcast(w http.ResponseWriter, r *http.Request) {
	var req broadcastRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	role, name, _ := authz.UserCtx(r)
	next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
		adminstate.Broadcast(htmlsanitize.Strip(req.Message),
			adminstate.BroadcastPriority(req.Priority), authz.Actor(role, name)))
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Audit.Mirror(next.AuditLogs[0])

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string]models.AuditLog{"audit": next.AuditLogs[0]})
}
