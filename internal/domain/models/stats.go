// internal/domain/models/stats.go
package models

// DeviceComplianceStats is the seeded compliance breakdown shown on
// the dashboard, expressed as percentages.
type DeviceComplianceStats struct {
	Compliant    int `json:"compliant"`
	NonCompliant int `json:"non_compliant"`
	Unknown      int `json:"unknown"`
}

// ActivityPoint is one day in the 30-day user-activity series.
type ActivityPoint struct {
	Date  string `json:"date"` // ISO-8601 date
	Users int    `json:"users"`
}

// DashboardStats is a precomputed aggregate snapshot seeded alongside
// the entity arrays. It is deliberately NOT recomputed after mutations:
// the counts reflect the seed and may drift from the live arrays as
// the session mutates them. See DESIGN.md for the rationale.
type DashboardStats struct {
	ActiveUsers       int                   `json:"active_users"`
	PendingApprovals  int                   `json:"pending_approvals"`
	CriticalIncidents int                   `json:"critical_incidents"`
	DailyMessages     int                   `json:"daily_messages"`
	DeviceCompliance  DeviceComplianceStats `json:"device_compliance"`
	UserActivity30d   []ActivityPoint       `json:"user_activity_30d"`
}

// MessageStat is one per-group per-day message count used by reports.
type MessageStat struct {
	GroupID  string `json:"group_id"`
	Date     string `json:"date"` // ISO-8601 date
	Messages int    `json:"messages"`
}
