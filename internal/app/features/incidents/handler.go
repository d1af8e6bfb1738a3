// internal/app/features/incidents/handler.go
package incidents

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/auditlog"
	"github.com/suchak/adminconsole/internal/app/system/authz"
	"github.com/suchak/adminconsole/internal/app/system/paging"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/app/system/search"
	"github.com/suchak/adminconsole/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the incident queue: listing, detail, and the triage
// state machine.
type Handler struct {
	State *adminstate.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{State: state, Audit: audit, Log: logger}
}

func filterIncidents(doc *models.AdminData, q, severity, status string) []models.Incident {
	return search.Filter(doc.Incidents, func(in models.Incident) bool {
		return search.Matches(q, in.Summary, in.Description, in.Type, in.UserID, in.ID) &&
			search.EnumMatches(severity, string(in.Severity)) &&
			search.EnumMatches(status, string(in.Status))
	})
}

// listSummary backs the triage summary cards; counts cover the whole
// queue.
type listSummary struct {
	Total         int `json:"total"`
	Open          int `json:"open"`
	Investigating int `json:"investigating"`
	Resolved      int `json:"resolved"`
	Critical      int `json:"critical"`
}

type listResponse struct {
	Incidents []models.Incident `json:"incidents"`
	Summary   listSummary       `json:"summary"`
	Paging    paging.Meta       `json:"paging"`
}

func summarize(doc *models.AdminData) listSummary {
	s := listSummary{Total: len(doc.Incidents)}
	for _, in := range doc.Incidents {
		switch in.Status {
		case models.IncidentOpen:
			s.Open++
		case models.IncidentInvestigating:
			s.Investigating++
		case models.IncidentResolved:
			s.Resolved++
		}
		if in.Severity == models.SeverityCritical {
			s.Critical++
		}
	}
	return s
}

// ServeList handles GET /api/incidents.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	rows := filterIncidents(doc, query.Get(r, "q"), query.Get(r, "severity"), query.Get(r, "status"))
	page := paging.Clamp(paging.ParsePage(r), len(rows))

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, listResponse{
		Incidents: paging.Slice(rows, page),
		Summary:   summarize(doc),
		Paging:    paging.MetaFor(page, len(rows)),
	})
}

// detailResponse pairs the incident with the affected user when the
// key resolves.
type detailResponse struct {
	Incident models.Incident `json:"incident"`
	User     *models.User    `json:"user"`
}

// ServeDetail handles GET /api/incidents/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	inc, ok := doc.IncidentByID(chi.URLParam(r, "id"))
	if !ok {
		respond.Err(w, h.Log, adminstate.ErrNotFound)
		return
	}

	resp := detailResponse{Incident: inc}
	if user, ok := doc.UserByID(inc.UserID); ok {
		resp.User = &user
	}

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, resp)
}

// HandleTransition handles
// POST /api/incidents/{id}/{acknowledge|investigate|resolve}. The
// signed-in operator becomes the assignee where the action assigns.
func (h *Handler) HandleTransition(action adminstate.IncidentAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role, name, _ := authz.UserCtx(r)
		incidentID := chi.URLParam(r, "id")
		operator := authz.Actor(role, name)

		next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
			adminstate.TransitionIncident(incidentID, action, operator, operator))
		if err != nil {
			respond.Err(w, h.Log, err)
			return
		}
		h.Audit.Mirror(next.AuditLogs[0])

		inc, _ := next.IncidentByID(incidentID)
		respond.SetVersion(w, version)
		respond.JSON(w, http.StatusOK, map[string]models.Incident{"incident": inc})
	}
}
