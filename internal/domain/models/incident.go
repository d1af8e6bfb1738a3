// internal/domain/models/incident.go
package models

// Severity grades incidents and audit-log entries.
type Severity string

const (
	SeverityInfo     Severity = "Info"
	SeverityWarning  Severity = "Warning"
	SeverityCritical Severity = "Critical"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeverityWarning, SeverityCritical:
		return true
	}
	return false
}

// IncidentStatus is the triage state of an incident.
// The state machine is Open → Investigating → Resolved; Resolved is
// terminal and no transition removes an incident.
type IncidentStatus string

const (
	IncidentOpen          IncidentStatus = "Open"
	IncidentInvestigating IncidentStatus = "Investigating"
	IncidentResolved      IncidentStatus = "Resolved"
)

// Valid reports whether s is one of the known incident statuses.
func (s IncidentStatus) Valid() bool {
	switch s {
	case IncidentOpen, IncidentInvestigating, IncidentResolved:
		return true
	}
	return false
}

// Incident is a security incident or alert. UserID is a foreign key
// into AdminData.Users and may be orphaned.
type Incident struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	Severity    Severity       `json:"severity"`
	Timestamp   string         `json:"timestamp"` // ISO-8601
	UserID      string         `json:"user_id"`
	Status      IncidentStatus `json:"status"`
	Summary     string         `json:"summary"`
	Description string         `json:"description"`
	AssignedTo  *string        `json:"assigned_to"`
}
