// internal/app/features/devices/export.go
package devices

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/suchak/adminconsole/internal/app/system/csvutil"
	"go.uber.org/zap"
)

var exportHeader = []string{
	"device_id", "user_id", "model", "os", "compliance",
	"attested_at", "ip", "safety_score",
}

// HandleExport handles GET /api/devices/export.
func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	doc, _ := h.State.Snapshot()
	rows := filterDevices(doc, query.Get(r, "q"), query.Get(r, "compliance"))

	export := csvutil.Export{
		Filename: "devices_export.csv",
		Header:   exportHeader,
		Rows:     make([][]string, 0, len(rows)),
	}
	for _, d := range rows {
		export.Rows = append(export.Rows, []string{
			d.DeviceID, d.UserID, d.Model, d.OS, string(d.Compliance),
			d.AttestedAt, d.IP, strconv.Itoa(d.SafetyScore),
		})
	}

	if err := csvutil.WriteResponse(w, export); err != nil {
		h.Log.Error("devices export: write csv", zap.Error(err))
	}
}
