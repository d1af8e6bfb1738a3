// internal/app/features/users/handler.go
package users

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

// Handler serves the user directory: listing, detail, lifecycle
// actions, and CSV export.
type Handler struct {
	State *adminstate.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{State: state, Audit: audit, Log: logger}
}

// filterUsers applies the list filters: free-text search over name,
// email, service id, phone, and id, plus an exact status constraint.
func filterUsers(doc *models.AdminData, q, status string) []models.User {
	return search.Filter(doc.Users, func(u models.User) bool {
		return search.Matches(q, u.Name, u.Email, u.ServiceID, u.Phone, u.ID) &&
			search.EnumMatches(status, string(u.Status))
	})
}

// listSummary backs the summary cards above the table. Counts cover
// the whole directory, not the filtered view.
type listSummary struct {
	Total     int `json:"total"`
	Active    int `json:"active"`
	Pending   int `json:"pending"`
	Suspended int `json:"suspended"`
}

type listResponse struct {
	Users   []models.User `json:"users"`
	Summary listSummary   `json:"summary"`
	Paging  paging.Meta   `json:"paging"`
}

func summarize(doc *models.AdminData) listSummary {
	s := listSummary{Total: len(doc.Users)}
	for _, u := range doc.Users {
		switch u.Status {
		case models.UserActive:
			s.Active++
		case models.UserPending:
			s.Pending++
		case models.UserSuspended:
			s.Suspended++
		}
	}
	return s
}

// ServeList handles GET /api/users.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	rows := filterUsers(doc, query.Get(r, "q"), query.Get(r, "status"))
	page := paging.Clamp(paging.ParsePage(r), len(rows))

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, listResponse{
		Users:   paging.Slice(rows, page),
		Summary: summarize(doc),
		Paging:  paging.MetaFor(page, len(rows)),
	})
}

// detailResponse composes everything the user page shows: the record,
// its device when the foreign key resolves, the user's incidents, and
// the ten most recent audit entries targeting the user.
type detailResponse struct {
	User      models.User       `json:"user"`
	Device    *models.Device    `json:"device"`
	Incidents []models.Incident `json:"incidents"`
	Activity  []models.AuditLog `json:"activity"`
}

// ServeDetail handles GET /api/users/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	user, ok := doc.UserByID(chi.URLParam(r, "id"))
	if !ok {
		respond.Err(w, h.Log, adminstate.ErrNotFound)
		return
	}

	resp := detailResponse{User: user, Incidents: []models.Incident{}, Activity: []models.AuditLog{}}
	if user.DeviceID != nil {
		// The device key may dangle; the detail page just omits it then.
		if dev, ok := doc.DeviceByID(*user.DeviceID); ok {
			resp.Device = &dev
		}
	}
	for _, inc := range doc.Incidents {
		if inc.UserID == user.ID {
			resp.Incidents = append(resp.Incidents, inc)
		}
	}
	// The log is newest-first, so the first ten hits are the most recent.
	for _, e := range doc.AuditLogs {
		if e.Target == user.ID {
			resp.Activity = append(resp.Activity, e)
			if len(resp.Activity) == 10 {
				break
			}
		}
	}

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, resp)
}
