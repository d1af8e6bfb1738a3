// internal/app/features/groups/export.go
package groups

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/suchak/adminconsole/internal/app/system/csvutil"
	"go.uber.org/zap"
)

var exportHeader = []string{
	"group_id", "name", "type", "members", "pending_requests", "activity", "created_at",
}

// HandleExport handles GET /api/groups/export.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.State.Snapshot()
	rows := filterGroups(doc, query.Get(r, "q"), query.Get(r, "type"))

	export := csvutil.Export{
		Filename: "groups_export.csv",
		Header:   exportHeader,
		Rows:     make([][]string, 0, len(rows)),
	}
	for _, g := range rows {
		export.Rows = append(export.Rows, []string{
			g.GroupID, g.Name, string(g.Type),
			strconv.Itoa(g.Members), strconv.Itoa(len(g.PendingRequests)),
			strconv.Itoa(g.Activity), g.CreatedAt,
		})
	}

	if err := csvutil.WriteResponse(w, export); err != nil {
		h.Log.Error("groups export: write csv", zap.Error(err))
	}
}
