// internal/app/store/adminstate/incidents.go
package adminstate

import (
	"fmt"

	"github.com/suchak/adminconsole/internal/domain/models"
)

// IncidentAction is a triage transition requested by an operator.
type IncidentAction string

const (
	IncidentAcknowledge IncidentAction = "acknowledge"
	IncidentInvestigate IncidentAction = "investigate"
	IncidentResolve     IncidentAction = "resolve"
)

// pastTense turns "acknowledge" into "acknowledged" for audit labels.
func (a IncidentAction) pastTense() string { return string(a) + "d" }

// TransitionIncident returns a transform that advances one incident
// through the Open → Investigating → Resolved machine:
//
//	acknowledge: Open → Investigating, assigns operator if unassigned
//	investigate: Investigating → Investigating, re-assigns operator
//	resolve:     Investigating → Resolved, keeps the existing assignee
//
// Resolved is terminal; any action against it (and any action not
// legal from the current status) returns a TransitionError.
func TransitionIncident(incidentID string, action IncidentAction, actor, operator string) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		inc, ok := doc.IncidentByID(incidentID)
		if !ok {
			return nil, ErrNotFound
		}

		var status models.IncidentStatus
		assignee := inc.AssignedTo
		switch action {
		case IncidentAcknowledge:
			if inc.Status != models.IncidentOpen {
				return nil, &TransitionError{Action: string(action), From: inc.Status}
			}
			status = models.IncidentInvestigating
			if assignee == nil && operator != "" {
				assignee = &operator
			}
		case IncidentInvestigate:
			if inc.Status != models.IncidentInvestigating {
				return nil, &TransitionError{Action: string(action), From: inc.Status}
			}
			status = models.IncidentInvestigating
			if operator != "" {
				assignee = &operator
			}
		case IncidentResolve:
			if inc.Status != models.IncidentInvestigating {
				return nil, &TransitionError{Action: string(action), From: inc.Status}
			}
			status = models.IncidentResolved
		default:
			return nil, &ValidationError{Field: "action", Msg: fmt.Sprintf("unknown incident action %q", action)}
		}

		incidents := make([]models.Incident, len(doc.Incidents))
		for i, in := range doc.Incidents {
			if in.ID == incidentID {
				in.Status = status
				in.AssignedTo = assignee
			}
			incidents[i] = in
		}

		next := *doc
		next.Incidents = incidents
		return AppendAudit(&next, models.AuditDraft{
			Actor:    actor,
			Action:   "Incident " + action.pastTense(),
			Target:   incidentID,
			Details:  fmt.Sprintf("Incident %s via admin console", action.pastTense()),
			Severity: models.SeverityInfo,
		}), nil
	}
}
