// internal/app/store/adminstate/settings.go
package adminstate

import (
	"fmt"
	"strings"

	"github.com/suchak/adminconsole/internal/domain/models"
)

// BroadcastPriority is the urgency of an emergency broadcast.
type BroadcastPriority string

const (
	PriorityHigh     BroadcastPriority = "high"
	PriorityCritical BroadcastPriority = "critical"
)

// UpdateSetting returns a transform that changes one console setting
// and records an Info audit entry. Keys use the wire (snake_case)
// names; an unknown key or a value of the wrong kind is rejected with
// a ValidationError.
func UpdateSetting(key string, value any, actor string) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		settings := doc.Settings

		switch key {
		case "metadata_retention_days":
			n, err := intValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.MetadataRetentionDays = n
		case "message_retention_days":
			n, err := intValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.MessageRetentionDays = n
		case "audit_log_retention_days":
			n, err := intValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.AuditLogRetentionDays = n
		case "max_failed_logins":
			n, err := intValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.MaxFailedLogins = n
		case "session_timeout_minutes":
			n, err := intValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.SessionTimeoutMinutes = n
		case "enable_auto_broadcast":
			b, err := boolValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.EnableAutoBroadcast = b
		case "enable_incident_notifications":
			b, err := boolValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.EnableIncidentNotifications = b
		case "enable_mfa":
			b, err := boolValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.EnableMFA = b
		case "auto_quarantine_rooted_devices":
			b, err := boolValue(key, value)
			if err != nil {
				return nil, err
			}
			settings.AutoQuarantineRootedDevices = b
		default:
			return nil, &ValidationError{Field: "key", Msg: fmt.Sprintf("unknown setting %q", key)}
		}

		next := *doc
		next.Settings = settings
		return AppendAudit(&next, models.AuditDraft{
			Actor:    actor,
			Action:   "Setting Updated",
			Target:   key,
			Details:  fmt.Sprintf("Setting %q changed to %q", key, fmt.Sprint(value)),
			Severity: models.SeverityInfo,
		}), nil
	}
}

// Broadcast returns a transform that records an emergency broadcast in
// the audit trail. Delivery itself is out of scope for the console;
// the audit entry is the record of intent.
func Broadcast(message string, priority BroadcastPriority, actor string) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		message = strings.TrimSpace(message)
		if message == "" {
			return nil, &ValidationError{Field: "message", Msg: "broadcast message must not be empty"}
		}

		severity := models.SeverityWarning
		switch priority {
		case PriorityHigh:
		case PriorityCritical:
			severity = models.SeverityCritical
		default:
			return nil, &ValidationError{Field: "priority", Msg: fmt.Sprintf("priority must be high or critical, got %q", priority)}
		}

		return AppendAudit(doc, models.AuditDraft{
			Actor:    actor,
			Action:   "Emergency Broadcast Sent",
			Target:   "All Users",
			Details:  fmt.Sprintf("Emergency broadcast sent with %s priority: %q", priority, message),
			Severity: severity,
		}), nil
	}
}

func intValue(key string, v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case float64: // encoding/json decodes numbers as float64
		if n == float64(int(n)) {
			return int(n), nil
		}
	}
	return 0, &ValidationError{Field: key, Msg: "expected an integer value"}
}

func boolValue(key string, v any) (bool, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	return false, &ValidationError{Field: key, Msg: "expected a boolean value"}
}
