// internal/app/features/dashboard/handler.go
package dashboard

import (
	"net/http"
	"sort"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the landing page numbers.
type Handler struct {
	State *adminstate.Store
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, logger *zap.Logger) *Handler {
	return &Handler{State: state, Log: logger}
}

// liveCounts are recomputed from the entity arrays on every request.
// They sit next to the seeded stats block, which is intentionally a
// snapshot and may disagree with them as the session mutates.
type liveCounts struct {
	TotalUsers     int `json:"total_users"`
	ActiveUsers    int `json:"active_users"`
	PendingUsers   int `json:"pending_users"`
	SuspendedUsers int `json:"suspended_users"`
	Devices        int `json:"devices"`
	Compliant      int `json:"compliant_devices"`
	Rooted         int `json:"rooted_devices"`
	Unknown        int `json:"unknown_devices"`
	Groups         int `json:"groups"`
	OpenIncidents  int `json:"open_incidents"`
	PendingJoins   int `json:"pending_join_requests"`
}

// GroupActivity is one bar in the group message-volume chart.
type GroupActivity struct {
	Name     string `json:"name"`
	Messages int    `json:"messages"`
}

type dashboardResponse struct {
	Stats           models.DashboardStats `json:"stats"`
	Live            liveCounts            `json:"live"`
	GroupActivity   []GroupActivity       `json:"group_activity"`
	RecentIncidents []models.Incident     `json:"recent_incidents"`
}

// Serve handles GET /api/dashboard.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	live := liveCounts{
		TotalUsers: len(doc.Users),
		Devices:    len(doc.Devices),
		Groups:     len(doc.Groups),
	}
	for _, u := range doc.Users {
		switch u.Status {
		case models.UserActive:
			live.ActiveUsers++
		case models.UserPending:
			live.PendingUsers++
		case models.UserSuspended:
			live.SuspendedUsers++
		}
	}
	for _, d := range doc.Devices {
		switch d.Compliance {
		case models.DeviceCompliant:
			live.Compliant++
		case models.DeviceRooted:
			live.Rooted++
		default:
			live.Unknown++
		}
	}
	for _, in := range doc.Incidents {
		if in.Status == models.IncidentOpen {
			live.OpenIncidents++
		}
	}
	for _, g := range doc.Groups {
		live.PendingJoins += len(g.PendingRequests)
	}

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, dashboardResponse{
		Stats:           doc.DashboardStats,
		Live:            live,
		GroupActivity:   groupActivity(doc),
		RecentIncidents: recentIncidents(doc, 5),
	})
}

func groupActivity(doc *models.AdminData) []GroupActivity {
	out := make([]GroupActivity, 0, len(doc.Groups))
	for _, g := range doc.Groups {
		out = append(out, GroupActivity{Name: g.Name, Messages: g.Activity})
	}
	return out
}

// recentIncidents returns the n newest incidents. Timestamps are
// RFC 3339, so lexical order is chronological order.
func recentIncidents(doc *models.AdminData, n int) []models.Incident {
	out := make([]models.Incident, len(doc.Incidents))
	copy(out, doc.Incidents)
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp > out[j].Timestamp })
	if len(out) > n {
		out = out[:n]
	}
	return out
}
