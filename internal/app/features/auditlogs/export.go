// internal/app/features/auditlogs/export.go
package auditlogs

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/suchak/adminconsole/internal/app/system/csvutil"
	"github.com/suchak/adminconsole/internal/app/system/search"
	"go.uber.org/zap"
)

var exportHeader = []string{
	"id", "actor", "action", "target", "timestamp", "details", "severity",
}

// HandleExport handles GET /api/audit-logs/export.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.State.Snapshot()
	rows := filterLogs(doc,
		query.Get(r, "q"),
		query.Get(r, "severity"),
		query.Get(r, "actor"),
		search.ParseDateRange(query.Get(r, "from"), query.Get(r, "to")))

	export := csvutil.Export{
		Filename: "audit_logs_export.csv",
		Header:   exportHeader,
		Rows:     make([][]string, 0, len(rows)),
	}
	for _, e := range rows {
		export.Rows = append(export.Rows, []string{
			e.ID, e.Actor, e.Action, e.Target, e.Timestamp, e.Details, string(e.Severity),
		})
	}

	if err := csvutil.WriteResponse(w, export); err != nil {
		h.Log.Error("audit logs export: write csv", zap.Error(err))
	}
}
