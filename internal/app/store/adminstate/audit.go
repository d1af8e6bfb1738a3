// internal/app/store/adminstate/audit.go
package adminstate

import (
	"time"

	"github.com/google/uuid"
	"github.com/suchak/adminconsole/internal/domain/models"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// newAuditID synthesizes a session-unique audit entry id. UUIDs are
// used instead of wall-clock reads so rapid successive appends can
// never collide.
func newAuditID() string {
	return "A-" + uuid.NewString()
}

// AppendAudit returns a new document whose audit log has a synthesized
// entry for draft prepended. The log is strictly newest-first; nothing
// else in the document changes and the input is left intact.
func AppendAudit(doc *models.AdminData, draft models.AuditDraft) *models.AdminData {
	entry := models.AuditLog{
		ID:        newAuditID(),
		Actor:     draft.Actor,
		Action:    draft.Action,
		Target:    draft.Target,
		Timestamp: timeNow().UTC().Format(time.RFC3339),
		Details:   draft.Details,
		Severity:  draft.Severity,
	}

	next := *doc
	logs := make([]models.AuditLog, 0, len(doc.AuditLogs)+1)
	logs = append(logs, entry)
	logs = append(logs, doc.AuditLogs...)
	next.AuditLogs = logs
	return &next
}
