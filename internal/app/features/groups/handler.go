// internal/app/features/groups/handler.go
package groups

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/auditlog"
	"github.com/suchak/adminconsole/internal/app/system/paging"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/app/system/search"
	"github.com/suchak/adminconsole/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves messaging groups: listing, detail, creation, and
// join-request moderation.
type Handler struct {
	State *adminstate.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{State: state, Audit: audit, Log: logger}
}

func filterGroups(doc *models.AdminData, q, typ string) []models.Group {
	return search.Filter(doc.Groups, func(g models.Group) bool {
		return search.Matches(q, g.Name, g.GroupID) &&
			search.EnumMatches(typ, string(g.Type))
	})
}

// listSummary backs the summary cards; counts cover all groups.
type listSummary struct {
	Total           int `json:"total"`
	Operational     int `json:"operational"`
	Family          int `json:"family"`
	Veteran         int `json:"veteran"`
	PendingRequests int `json:"pending_requests"`
}

type listResponse struct {
	Groups  []models.Group `json:"groups"`
	Summary listSummary    `json:"summary"`
	Paging  paging.Meta    `json:"paging"`
}

func summarize(doc *models.AdminData) listSummary {
	s := listSummary{Total: len(doc.Groups)}
	for _, g := range doc.Groups {
		switch g.Type {
		case models.GroupOperational:
			s.Operational++
		case models.GroupFamily:
			s.Family++
		case models.GroupVeteran:
			s.Veteran++
		}
		s.PendingRequests += len(g.PendingRequests)
	}
	return s
}

// ServeList handles GET /api/groups.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	rows := filterGroups(doc, query.Get(r, "q"), query.Get(r, "type"))
	page := paging.Clamp(paging.ParsePage(r), len(rows))

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, listResponse{
		Groups:  paging.Slice(rows, page),
		Summary: summarize(doc),
		Paging:  paging.MetaFor(page, len(rows)),
	})
}

// ServeDetail handles GET /api/groups/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	group, ok := doc.GroupByID(chi.URLParam(r, "id"))
	if !ok {
		respond.Err(w, h.Log, adminstate.ErrNotFound)
		return
	}

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string]models.Group{"group": group})
}
