// internal/app/features/reports/handler.go
package reports

import (
	"net/http"
	"sort"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the reports page: message volume reshaped per group
// and per day, plus a live compliance breakdown.
type Handler struct {
	State *adminstate.Store
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, logger *zap.Logger) *Handler {
	return &Handler{State: state, Log: logger}
}

// GroupVolume is total message volume for one group across the window.
type GroupVolume struct {
	GroupID   string `json:"group_id"`
	GroupName string `json:"group_name"`
	Messages  int    `json:"messages"`
}

// DayVolume is total message volume across groups for one day.
type DayVolume struct {
	Date     string `json:"date"`
	Messages int    `json:"messages"`
}

// IncidentDay is one day's incident counts split by severity.
type IncidentDay struct {
	Date     string `json:"date"`
	Critical int    `json:"critical"`
	Warning  int    `json:"warning"`
	Info     int    `json:"info"`
}

// OverviewRow is one metric line in the system overview report.
type OverviewRow struct {
	Metric string `json:"metric"`
	Value  int    `json:"value"`
}

type reportsResponse struct {
	Overview        []OverviewRow                `json:"overview"`
	MessagesByGroup []GroupVolume                `json:"messages_by_group"`
	MessagesByDay   []DayVolume                  `json:"messages_by_day"`
	IncidentsByDay  []IncidentDay                `json:"incidents_by_day"`
	Compliance      models.DeviceComplianceStats `json:"compliance"`
	UserActivity    []models.ActivityPoint       `json:"user_activity"`
}

// Serve handles GET /api/reports: every report series in one payload,
// the way the reports page loads.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, reportsResponse{
		Overview:        overviewRows(doc),
		MessagesByGroup: messagesByGroup(doc),
		MessagesByDay:   messagesByDay(doc),
		IncidentsByDay:  incidentsByDay(doc),
		Compliance:      liveCompliance(doc),
		UserActivity:    doc.DashboardStats.UserActivity30d,
	})
}

// ServeOverview handles GET /api/reports/overview.
func (h *Handler) ServeOverview(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string][]OverviewRow{"overview": overviewRows(doc)})
}

// ServeIncidents handles GET /api/reports/incidents.
func (h *Handler) ServeIncidents(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string][]IncidentDay{"incidents_by_day": incidentsByDay(doc)})
}

// ServeGroupActivity handles GET /api/reports/group-activity.
func (h *Handler) ServeGroupActivity(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string]any{
		"messages_by_group": messagesByGroup(doc),
		"messages_by_day":   messagesByDay(doc),
	})
}

// ServeUserActivity handles GET /api/reports/user-activity.
func (h *Handler) ServeUserActivity(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string][]models.ActivityPoint{"user_activity": doc.DashboardStats.UserActivity30d})
}

// ServeCompliance handles GET /api/reports/compliance.
func (h *Handler) ServeCompliance(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, map[string]models.DeviceComplianceStats{"compliance": liveCompliance(doc)})
}

// overviewRows are the high-level metric lines. Active Users comes
// from the seeded stats block like the overview page; the rest are
// live counts.
func overviewRows(doc *models.AdminData) []OverviewRow {
	open := 0
	for _, in := range doc.Incidents {
		if in.Status == models.IncidentOpen {
			open++
		}
	}
	return []OverviewRow{
		{Metric: "Total Users", Value: len(doc.Users)},
		{Metric: "Active Users", Value: doc.DashboardStats.ActiveUsers},
		{Metric: "Total Devices", Value: len(doc.Devices)},
		{Metric: "Total Groups", Value: len(doc.Groups)},
		{Metric: "Open Incidents", Value: open},
	}
}

// incidentsByDay buckets incidents by the date portion of their
// timestamp, ascending.
func incidentsByDay(doc *models.AdminData) []IncidentDay {
	buckets := map[string]*IncidentDay{}
	for _, in := range doc.Incidents {
		date := in.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}
		day := buckets[date]
		if day == nil {
			day = &IncidentDay{Date: date}
			buckets[date] = day
		}
		switch in.Severity {
		case models.SeverityCritical:
			day.Critical++
		case models.SeverityWarning:
			day.Warning++
		default:
			day.Info++
		}
	}

	out := make([]IncidentDay, 0, len(buckets))
	for _, day := range buckets {
		out = append(out, *day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// messagesByGroup sums per-group volume and resolves group names.
// Stats rows for groups missing from the document keep their id with
// an empty name.
func messagesByGroup(doc *models.AdminData) []GroupVolume {
	totals := map[string]int{}
	for _, s := range doc.MessagesStats {
		totals[s.GroupID] += s.Messages
	}

	out := make([]GroupVolume, 0, len(totals))
	for id, n := range totals {
		name := ""
		if g, ok := doc.GroupByID(id); ok {
			name = g.Name
		}
		out = append(out, GroupVolume{GroupID: id, GroupName: name, Messages: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Messages != out[j].Messages {
			return out[i].Messages > out[j].Messages
		}
		return out[i].GroupID < out[j].GroupID
	})
	return out
}

func messagesByDay(doc *models.AdminData) []DayVolume {
	totals := map[string]int{}
	for _, s := range doc.MessagesStats {
		totals[s.Date] += s.Messages
	}

	out := make([]DayVolume, 0, len(totals))
	for date, n := range totals {
		out = append(out, DayVolume{Date: date, Messages: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// liveCompliance counts the device arrays as they stand now, unlike
// the seeded dashboard percentages.
func liveCompliance(doc *models.AdminData) models.DeviceComplianceStats {
	var stats models.DeviceComplianceStats
	for _, d := range doc.Devices {
		switch d.Compliance {
		case models.DeviceCompliant:
			stats.Compliant++
		case models.DeviceRooted:
			stats.NonCompliant++
		default:
			stats.Unknown++
		}
	}
	return stats
}
