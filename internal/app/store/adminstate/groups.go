// internal/app/store/adminstate/groups.go
package adminstate

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/suchak/adminconsole/internal/domain/models"
)

// CreateGroup returns a transform that prepends a new group to the
// document. The creator counts as the first member. The generated
// group id is reported through gotID so the handler can echo it back.
func CreateGroup(name string, typ models.GroupType, actor string, now time.Time, gotID *string) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &ValidationError{Field: "name", Msg: "group name must not be empty"}
		}
		if !typ.Valid() {
			return nil, &ValidationError{Field: "type", Msg: fmt.Sprintf("unknown group type %q", typ)}
		}

		group := models.Group{
			GroupID:         "G-" + uuid.NewString(),
			Name:            name,
			Type:            typ,
			Members:         1,
			PendingRequests: []models.JoinRequest{},
			Activity:        0,
			CreatedAt:       now.UTC().Format(time.RFC3339),
		}
		if gotID != nil {
			*gotID = group.GroupID
		}

		groups := make([]models.Group, 0, len(doc.Groups)+1)
		groups = append(groups, group)
		groups = append(groups, doc.Groups...)

		next := *doc
		next.Groups = groups
		return AppendAudit(&next, models.AuditDraft{
			Actor:    actor,
			Action:   "Group Created",
			Target:   group.GroupID,
			Details:  fmt.Sprintf("New %s group %q created", typ, name),
			Severity: models.SeverityInfo,
		}), nil
	}
}

// ResolveJoinRequest returns a transform that removes a pending join
// request from a group, incrementing the member count only when the
// request is approved. Missing group or request yields ErrNotFound.
func ResolveJoinRequest(groupID, userID string, approve bool, actor string) Transform {
	return func(doc *models.AdminData) (*models.AdminData, error) {
		group, ok := doc.GroupByID(groupID)
		if !ok {
			return nil, ErrNotFound
		}
		found := false
		for _, req := range group.PendingRequests {
			if req.UserID == userID {
				found = true
				break
			}
		}
		if !found {
			return nil, ErrNotFound
		}

		verdict := "Rejected"
		if approve {
			verdict = "Approved"
		}

		groups := make([]models.Group, len(doc.Groups))
		for i, g := range doc.Groups {
			if g.GroupID == groupID {
				remaining := make([]models.JoinRequest, 0, len(g.PendingRequests))
				for _, req := range g.PendingRequests {
					if req.UserID != userID {
						remaining = append(remaining, req)
					}
				}
				g.PendingRequests = remaining
				if approve {
					g.Members++
				}
			}
			groups[i] = g
		}

		next := *doc
		next.Groups = groups
		return AppendAudit(&next, models.AuditDraft{
			Actor:    actor,
			Action:   "Group Join Request " + verdict,
			Target:   groupID + ":" + userID,
			Details:  fmt.Sprintf("Join request %s for user %s", strings.ToLower(verdict), userID),
			Severity: models.SeverityInfo,
		}), nil
	}
}
