// internal/domain/models/settings.go
package models

// ConsoleSettings holds platform-wide switches editable from the
// Settings page. Only Super Admins may change these; every change is
// audited.
type ConsoleSettings struct {
	MetadataRetentionDays       int  `json:"metadata_retention_days"`
	MessageRetentionDays        int  `json:"message_retention_days"`
	AuditLogRetentionDays       int  `json:"audit_log_retention_days"`
	EnableAutoBroadcast         bool `json:"enable_auto_broadcast"`
	EnableIncidentNotifications bool `json:"enable_incident_notifications"`
	MaxFailedLogins             int  `json:"max_failed_logins"`
	SessionTimeoutMinutes       int  `json:"session_timeout_minutes"`
	EnableMFA                   bool `json:"enable_mfa"`
	AutoQuarantineRootedDevices bool `json:"auto_quarantine_rooted_devices"`
}

// DefaultConsoleSettings returns the settings in effect when the seed
// document carries none.
func DefaultConsoleSettings() ConsoleSettings {
	return ConsoleSettings{
		MetadataRetentionDays:       90,
		MessageRetentionDays:        30,
		AuditLogRetentionDays:       365,
		EnableAutoBroadcast:         true,
		EnableIncidentNotifications: true,
		MaxFailedLogins:             3,
		SessionTimeoutMinutes:       30,
		EnableMFA:                   true,
		AutoQuarantineRootedDevices: true,
	}
}
