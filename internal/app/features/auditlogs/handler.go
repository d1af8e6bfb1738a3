// internal/app/features/auditlogs/handler.go
package auditlogs

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/paging"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/app/system/search"
	"github.com/suchak/adminconsole/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the audit trail. Entries are read-only through this
// surface; only state transforms append to the log.
type Handler struct {
	State *adminstate.Store
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, logger *zap.Logger) *Handler {
	return &Handler{State: state, Log: logger}
}

// filterLogs applies the trail filters: free-text search over action,
// target, and details, exact severity and actor constraints, and an
// inclusive date range. The actor filter is fed from the dropdown of
// known actors, so it matches whole values only.
func filterLogs(doc *models.AdminData, q, severity, actor string, dates search.DateRange) []models.AuditLog {
	return search.Filter(doc.AuditLogs, func(e models.AuditLog) bool {
		return search.Matches(q, e.Action, e.Target, e.Details) &&
			search.EnumMatches(severity, string(e.Severity)) &&
			search.EnumMatches(actor, e.Actor) &&
			dates.Contains(e.Timestamp)
	})
}

type listResponse struct {
	AuditLogs []models.AuditLog `json:"audit_logs"`
	Actors    []string          `json:"actors"`
	Paging    paging.Meta       `json:"paging"`
}

// uniqueActors feeds the actor filter dropdown. Order follows first
// appearance in the log, which is newest-first.
func uniqueActors(doc *models.AdminData) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, e := range doc.AuditLogs {
		if !seen[e.Actor] {
			seen[e.Actor] = true
			out = append(out, e.Actor)
		}
	}
	return out
}

// ServeList handles GET /api/audit-logs. The log is stored
// newest-first and served in that order.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	rows := filterLogs(doc,
		query.Get(r, "q"),
		query.Get(r, "severity"),
		query.Get(r, "actor"),
		search.ParseDateRange(query.Get(r, "from"), query.Get(r, "to")))
	page := paging.Clamp(paging.ParsePage(r), len(rows))

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, listResponse{
		AuditLogs: paging.Slice(rows, page),
		Actors:    uniqueActors(doc),
		Paging:    paging.MetaFor(page, len(rows)),
	})
}
