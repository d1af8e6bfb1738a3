// internal/app/features/devices/handler.go
package devices

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

// Handler serves the device fleet: listing, detail, quarantine, and
// attestation reruns.
type Handler struct {
	State *adminstate.Store
	Audit *auditlog.Logger
	Log   *zap.Logger
}

func NewHandler(state *adminstate.Store, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{State: state, Audit: audit, Log: logger}
}

// filterDevices applies the fleet filters: free-text search over
// device id, the resolved owner name, and model, plus an exact
// compliance constraint. A dangling user_id just means the owner name
// contributes nothing to the match.
func filterDevices(doc *models.AdminData, q, compliance string) []models.Device {
	return search.Filter(doc.Devices, func(d models.Device) bool {
		ownerName := ""
		if owner, ok := doc.UserByID(d.UserID); ok {
			ownerName = owner.Name
		}
		return search.Matches(q, d.DeviceID, ownerName, d.Model) &&
			search.EnumMatches(compliance, string(d.Compliance))
	})
}

// deviceRow is a device with its owner's display name resolved. A
// dangling user_id renders as "Unknown".
type deviceRow struct {
	models.Device
	OwnerName string `json:"owner_name"`
}

// listSummary backs the fleet summary cards; counts cover all devices.
type listSummary struct {
	Total     int `json:"total"`
	Compliant int `json:"compliant"`
	Rooted    int `json:"rooted"`
	Unknown   int `json:"unknown"`
}

type listResponse struct {
	Devices []deviceRow `json:"devices"`
	Summary listSummary `json:"summary"`
	Paging  paging.Meta `json:"paging"`
}

func summarize(doc *models.AdminData) listSummary {
	s := listSummary{Total: len(doc.Devices)}
	for _, d := range doc.Devices {
		switch d.Compliance {
		case models.DeviceCompliant:
			s.Compliant++
		case models.DeviceRooted:
			s.Rooted++
		default:
			s.Unknown++
		}
	}
	return s
}

// ServeList handles GET /api/devices.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	rows := filterDevices(doc, query.Get(r, "q"), query.Get(r, "compliance"))
	page := paging.Clamp(paging.ParsePage(r), len(rows))

	visible := paging.Slice(rows, page)
	out := make([]deviceRow, 0, len(visible))
	for _, d := range visible {
		name := "Unknown"
		if owner, ok := doc.UserByID(d.UserID); ok {
			name = owner.Name
		}
		out = append(out, deviceRow{Device: d, OwnerName: name})
	}

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, listResponse{
		Devices: out,
		Summary: summarize(doc),
		Paging:  paging.MetaFor(page, len(rows)),
	})
}

// detailResponse pairs the device with its owner when the user key
// resolves.
type detailResponse struct {
	Device models.Device `json:"device"`
	Owner  *models.User  `json:"owner"`
}

// ServeDetail handles GET /api/devices/{id}.
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	doc, version := h.State.Snapshot()

	dev, ok := doc.DeviceByID(chi.URLParam(r, "id"))
	if !ok {
		respond.Err(w, h.Log, adminstate.ErrNotFound)
		return
	}

	resp := detailResponse{Device: dev}
	if owner, ok := doc.UserByID(dev.UserID); ok {
		resp.Owner = &owner
	}

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, resp)
}
