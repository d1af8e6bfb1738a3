// internal/app/features/incidents/export.go
package incidents

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/suchak/adminconsole/internal/app/system/csvutil"
	"go.uber.org/zap"
)

var exportHeader = []string{
	"id", "type", "severity", "timestamp", "user_id",
	"status", "summary", "description", "assigned_to",
}

// HandleExport handles GET /api/incidents/export.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.State.Snapshot()
	rows := filterIncidents(doc, query.Get(r, "q"), query.Get(r, "severity"), query.Get(r, "status"))

	export := csvutil.Export{
		Filename: "incidents_export.csv",
		Header:   exportHeader,
		Rows:     make([][]string, 0, len(rows)),
	}
	for _, in := range rows {
		assignee := ""
		if in.AssignedTo != nil {
			assignee = *in.AssignedTo
		}
		export.Rows = append(export.Rows, []string{
			in.ID, in.Type, string(in.Severity), in.Timestamp, in.UserID,
			string(in.Status), in.Summary, in.Description, assignee,
		})
	}

	if err := csvutil.WriteResponse(w, export); err != nil {
		h.Log.Error("incidents export: write csv", zap.Error(err))
	}
}
