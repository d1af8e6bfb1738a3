// internal/app/features/devices/actions.go
package devices

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/authz"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"github.com/suchak/adminconsole/internal/domain/models"
)

type actionResponse struct {
	Device   models.Device    `json:"device"`
	Incident *models.Incident `json:"incident,omitempty"`
}

// HandleQuarantine handles POST /api/devices/{id}/quarantine. The
// response carries the incident the toggle opened alongside the
// updated device.
func (h *Handler) HandleQuarantine(w http.ResponseWriter, r *http.Request) {
	role, name, _ := authz.UserCtx(r)
	deviceID := chi.URLParam(r, "id")

	next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
		adminstate.ToggleQuarantine(deviceID, authz.Actor(role, name), time.Now()))
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Audit.Mirror(next.AuditLogs[0])

	dev, _ := next.DeviceByID(deviceID)
	incident := next.Incidents[0]

	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, actionResponse{Device: dev, Incident: &incident})
}

// HandleAttest handles POST /api/devices/{id}/attest: a manual
// attestation rerun with a freshly rolled safety score.
func (h *Handler) HandleAttest(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "id")

	next, version, err := h.State.ApplyAt(respond.BaseVersion(r),
		adminstate.RerunAttestation(deviceID, time.Now(), adminstate.RollSafetyScore()))
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Audit.Mirror(next.AuditLogs[0])

	dev, _ := next.DeviceByID(deviceID)
	respond.SetVersion(w, version)
	respond.JSON(w, http.StatusOK, actionResponse{Device: dev})
}
