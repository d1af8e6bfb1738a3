// internal/app/store/adminstate/users.go
package adminstate

import (
	"fmt"

	"github.com/suchak/adminconsole/internal/domain/models"
)

// UserAction is a user lifecycle transition requested by an operator.
type UserAction string

const (
	UserApprove  UserAction = "approve"
	UserSuspend  UserAction = "suspend"
	UserActivate UserAction = "activate"
)

// targetStatus maps an action to the status it lands the user in.
// Approve and activate both end in Active; they differ only in which
// starting status they make sense from, which the console UI gates.
func (a UserAction) targetStatus() (models.UserStatus, bool) {
	switch a {
	case UserApprove, UserActivate:
		return models.UserActive, true
	case UserSuspend:
		return models.UserSuspended, true
	}
	return "", false
}

// pastTense turns "approve" into "approved" for audit labels.
func (a UserAction) pastTense() string { return string(a) + "d" }

// SetUserStatus returns a transform that moves one user to the status
// implied by action and prepends an Info audit entry. A missing user
// id yields ErrNotFound.
func SetUserStatus(userID string, action UserAction, actor string) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		status, ok := action.targetStatus()
		if !ok {
			return nil, &ValidationError{Field: "action", Msg: fmt.Sprintf("unknown user action %q", action)}
		}
		if _, ok := doc.UserByID(userID); !ok {
			return nil, ErrNotFound
		}

		users := make([]models.User, len(doc.Users))
		for i, u := range doc.Users {
			if u.ID == userID {
				u.Status = status
			}
			users[i] = u
		}

		next := *doc
		next.Users = users
		return AppendAudit(&next, models.AuditDraft{
			Actor:    actor,
			Action:   "User " + action.pastTense(),
			Target:   userID,
			Details:  fmt.Sprintf("User %s via admin console", action.pastTense()),
			Severity: models.SeverityInfo,
		}), nil
	}
}

// BulkSetUserStatus returns a transform that applies one approve or
// suspend transition to every selected user in a single commit, with
// one audit entry covering the batch. Ids that don't resolve are
// skipped, matching the per-row behavior of the selection UI.
func BulkSetUserStatus(userIDs []string, action UserAction, actor string) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		if action != UserApprove && action != UserSuspend {
			return nil, &ValidationError{Field: "action", Msg: fmt.Sprintf("bulk action must be approve or suspend, got %q", action)}
		}
		if len(userIDs) == 0 {
			return nil, &ValidationError{Field: "ids", Msg: "no users selected"}
		}
		status, _ := action.targetStatus()

		selected := make(map[string]struct{}, len(userIDs))
		for _, id := range userIDs {
			selected[id] = struct{}{}
		}

		users := make([]models.User, len(doc.Users))
		for i, u := range doc.Users {
			if _, ok := selected[u.ID]; ok {
				u.Status = status
			}
			users[i] = u
		}

		next := *doc
		next.Users = users
		return AppendAudit(&next, models.AuditDraft{
			Actor:    actor,
			Action:   "Bulk " + string(action),
			Target:   fmt.Sprintf("%d users", len(userIDs)),
			Details:  fmt.Sprintf("Bulk %s operation on selected users", action),
			Severity: models.SeverityInfo,
		}), nil
	}
}
