// internal/app/features/reports/export.go
package reports

import (
	"net/http"
	"strconv"

	"github.com/suchak/adminconsole/internal/app/system/csvutil"
	"go.uber.org/zap"
)

var exportHeader = []string{"group_id", "group_name", "date", "messages"}

// HandleExport handles GET /api/reports/export: the raw per-group
// per-day message counts with group names resolved.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.State.Snapshot()

	export := csvutil.Export{
		Filename: "message_volume_export.csv",
		Header:   exportHeader,
		Rows:     make([][]string, 0, len(doc.MessagesStats)),
	}
	for _, s := range doc.MessagesStats {
		name := ""
		if g, ok := doc.GroupByID(s.GroupID); ok {
			name = g.Name
		}
		export.Rows = append(export.Rows, []string{
			s.GroupID, name, s.Date, strconv.Itoa(s.Messages),
		})
	}

	if err := csvutil.WriteResponse(w, export); err != nil {
		h.Log.Error("reports export: write csv", zap.Error(err))
	}
}

// HandleOverviewExport handles GET /api/reports/overview/export.
func (h *Handler) HandleOverviewExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.State.Snapshot()

	rows := overviewRows(doc)
	export := csvutil.Export{
		Filename: "overview_report.csv",
		Header:   []string{"metric", "value"},
		Rows:     make([][]string, 0, len(rows)),
	}
	for _, row := range rows {
		export.Rows = append(export.Rows, []string{row.Metric, strconv.Itoa(row.Value)})
	}

	if err := csvutil.WriteResponse(w, export); err != nil {
		h.Log.Error("overview export: write csv", zap.Error(err))
	}
}

// HandleIncidentsExport handles GET /api/reports/incidents/export.
func (h *Handler) HandleIncidentsExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.State.Snapshot()

	days := incidentsByDay(doc)
	export := csvutil.Export{
		Filename: "incidents_report.csv",
		Header:   []string{"date", "critical", "warning", "info"},
		Rows:     make([][]string, 0, len(days)),
	}
	for _, day := range days {
		export.Rows = append(export.Rows, []string{
			day.Date, strconv.Itoa(day.Critical), strconv.Itoa(day.Warning), strconv.Itoa(day.Info),
		})
	}

	if err := csvutil.WriteResponse(w, export); err != nil {
		h.Log.Error("incidents export: write csv", zap.Error(err))
	}
}
