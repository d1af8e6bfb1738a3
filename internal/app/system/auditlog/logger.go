// internal/app/system/auditlog/logger.go

// Package auditlog mirrors administrative audit entries into the
// structured log. The document's audit trail is the durable record for
// the session; the zap mirror is what operations tooling tails.
package auditlog

import (
	"github.com/suchak/adminconsole/internal/domain/models"
	"go.uber.org/zap"
)

// Config controls where admin audit events go.
type Config struct {
	// Admin controls logging for admin action events.
	// Values: "all" (document + zap), "db" (document only),
	// "log" (zap only), "off" (disabled).
	Admin string
}

// Logger mirrors audit entries to zap per configuration. The document
// append itself happens inside the state transform; Logger only
// decides whether the zap copy is emitted.
type Logger struct {
	zapLog *zap.Logger
	config Config
}

// New creates an audit Logger.
func New(zapLog *zap.Logger, config Config) *Logger {
	return &Logger{zapLog: zapLog, config: config}
}

// Mirror emits the committed audit entry to zap when configured. A nil
// Logger is a no-op so tests can skip wiring one.
func (l *Logger) Mirror(entry models.AuditLog) {
	if l == nil {
		return
	}
	if l.config.Admin != "all" && l.config.Admin != "log" {
		return
	}

	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("id", entry.ID),
		zap.String("actor", entry.Actor),
		zap.String("action", entry.Action),
		zap.String("target", entry.Target),
		zap.String("details", entry.Details),
	}

	switch entry.Severity {
	case models.SeverityCritical:
		l.zapLog.Error("audit event", fields...)
	case models.SeverityWarning:
		l.zapLog.Warn("audit event", fields...)
	default:
		l.zapLog.Info("audit event", fields...)
	}
}
