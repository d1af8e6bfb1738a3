// internal/domain/models/group.go
package models

// GroupType classifies a messaging group.
type GroupType string

const (
	GroupOperational GroupType = "Operational"
	GroupFamily      GroupType = "Family"
	GroupVeteran     GroupType = "Veteran"
)

// Valid reports whether t is one of the known group types.
func (t GroupType) Valid() bool {
	switch t {
	case GroupOperational, GroupFamily, GroupVeteran:
		return true
	}
	return false
}

// JoinRequest is a pending request by a user to join a group.
// UserID may reference a user missing from the document.
type JoinRequest struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name"`
	RequestedAt string `json:"requested_at"` // ISO-8601
	Reason      string `json:"reason"`
}

// Group is a messaging group. Members is a count, not a membership
// list; Activity is the group's message count.
type Group struct {
	GroupID         string        `json:"group_id"`
	Name            string        `json:"name"`
	Type            GroupType     `json:"type"`
	Members         int           `json:"members"`
	PendingRequests []JoinRequest `json:"pending_requests"`
	Activity        int           `json:"activity"`
	CreatedAt       string        `json:"created_at"` // ISO-8601
}
