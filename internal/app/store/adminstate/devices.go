// internal/app/store/adminstate/devices.go
package adminstate

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/suchak/adminconsole/internal/domain/models"
)

// ToggleQuarantine returns a transform that flips a device between
// Compliant and Rooted (Unknown devices come back as Compliant, the
// same direction the toggle has always taken them). The same commit
// opens a Warning incident for the device's owner and records a
// Warning audit entry, so callers observe all three changes in one
// document replacement.
func ToggleQuarantine(deviceID, actor string, now time.Time) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		dev, ok := doc.DeviceByID(deviceID)
		if !ok {
			return nil, ErrNotFound
		}

		devices := make([]models.Device, len(doc.Devices))
		for i, d := range doc.Devices {
			if d.DeviceID == deviceID {
				if d.Compliance == models.DeviceCompliant {
					d.Compliance = models.DeviceRooted
				} else {
					d.Compliance = models.DeviceCompliant
				}
			}
			devices[i] = d
		}

		incident := models.Incident{
			ID:          "I-" + uuid.NewString(),
			Type:        "Device Action",
			Severity:    models.SeverityWarning,
			Timestamp:   now.UTC().Format(time.RFC3339),
			UserID:      dev.UserID,
			Status:      models.IncidentOpen,
			Summary:     "Device quarantine status changed",
			Description: fmt.Sprintf("Device %s quarantine status modified by admin", deviceID),
			AssignedTo:  nil,
		}

		incidents := make([]models.Incident, 0, len(doc.Incidents)+1)
		incidents = append(incidents, incident)
		incidents = append(incidents, doc.Incidents...)

		next := *doc
		next.Devices = devices
		next.Incidents = incidents
		return AppendAudit(&next, models.AuditDraft{
			Actor:    actor,
			Action:   "Device Quarantine Toggle",
			Target:   deviceID,
			Details:  "Device compliance status changed",
			Severity: models.SeverityWarning,
		}), nil
	}
}

// RerunAttestation returns a transform that refreshes a device's
// attested_at stamp and replaces its safety score. The audit entry is
// recorded under the System actor: attestation is executed by the
// platform even when an operator requests it.
func RerunAttestation(deviceID string, now time.Time, score int) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		if _, ok := doc.DeviceByID(deviceID); !ok {
			return nil, ErrNotFound
		}
		if score < 0 || score > 100 {
			return nil, &ValidationError{Field: "score", Msg: "safety score must be 0-100"}
		}

		devices := make([]models.Device, len(doc.Devices))
		for i, d := range doc.Devices {
			if d.DeviceID == deviceID {
				d.AttestedAt = now.UTC().Format(time.RFC3339)
				d.SafetyScore = score
			}
			devices[i] = d
		}

		next := *doc
		next.Devices = devices
		return AppendAudit(&next, models.AuditDraft{
			Actor:    models.SystemActor,
			Action:   "Device Attestation Rerun",
			Target:   deviceID,
			Details:  "Manual attestation rerun requested by admin",
			Severity: models.SeverityInfo,
		}), nil
	}
}

// RollSafetyScore produces an attestation safety score: half the time
// a healthy 80-99, otherwise a degraded 30-69.
func RollSafetyScore() int {
	if rand.IntN(2) == 0 {
		return 80 + rand.IntN(20)
	}
	return 30 + rand.IntN(40)
}
