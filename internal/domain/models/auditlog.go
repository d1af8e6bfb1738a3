// internal/domain/models/auditlog.go
package models

// SystemActor is the actor string for entries recorded by the platform
// itself rather than a signed-in operator.
const SystemActor = "System"

// AuditLog is one entry in the append-only administrative audit trail.
// Entries are stored newest-first; ID and Timestamp are synthesized at
// append time and never supplied by callers.
type AuditLog struct {
	ID        string   `json:"id"`
	Actor     string   `json:"actor"` // "<role>:<operator>" or SystemActor
	Action    string   `json:"action"`
	Target    string   `json:"target"`
	Timestamp string   `json:"timestamp"` // ISO-8601
	Details   string   `json:"details"`
	Severity  Severity `json:"severity"`
}

// AuditDraft is the caller-supplied portion of an audit entry.
type AuditDraft struct {
	Actor    string
	Action   string
	Target   string
	Details  string
	Severity Severity
}
