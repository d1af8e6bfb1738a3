// internal/app/system/authz/authz.go

// Package authz defines the closed set of console roles and the
// capability table that gates every page and mutation. Roles are a
// fixed enum, not free strings: anything outside the three known
// values is rejected at the door (sign-in) so the rest of the code
// can switch on Role without a default branch for garbage.
package authz

import (
	"net/http"
	"strings"

	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// Role is a console role. The set is closed; use ParseRole to get one
// from untrusted input.
type Role string

const (
	RoleSuperAdmin Role = "Super Admin"
	RoleGroupAdmin Role = "Group Admin"
	RoleAuditor    Role = "Auditor"
)

// Roles lists every valid console role, in display order.
func Roles() []Role {
	return []Role{RoleSuperAdmin, RoleGroupAdmin, RoleAuditor}
}

// ParseRole maps untrusted input to a Role. Matching is
// case-insensitive and tolerant of surrounding space; anything else
// returns ok=false.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "super admin":
		return RoleSuperAdmin, true
	case "group admin":
		return RoleGroupAdmin, true
	case "auditor":
		return RoleAuditor, true
	}
	return "", false
}

// Page is a console section that can be granted or withheld per role.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageUsers     Page = "users"
	PageDevices   Page = "devices"
	PageGroups    Page = "groups"
	PageIncidents Page = "incidents"
	PageAuditLogs Page = "audit_logs"
	PageReports   Page = "reports"
	PageSettings  Page = "settings"
)

// Capabilities describes what one role may see and do.
type Capabilities struct {
	// CanMutate covers lifecycle actions, device actions, and
	// group/incident writes.
	CanMutate         bool   `json:"can_mutate"`
	CanAccessSettings bool   `json:"can_access_settings"`
	VisiblePages      []Page `json:"visible_pages"`
}

// capabilities is the whole authorization model. Auditors read the
// audit trail but touch nothing; Group Admins run day-to-day
// operations; Super Admins additionally own settings and broadcasts.
var capabilities = map[Role]Capabilities{
	RoleSuperAdmin: {
		CanMutate:         true,
		CanAccessSettings: true,
		VisiblePages: []Page{
			PageDashboard, PageUsers, PageDevices, PageGroups,
			PageIncidents, PageAuditLogs, PageReports, PageSettings,
		},
	},
	RoleGroupAdmin: {
		CanMutate: true,
		VisiblePages: []Page{
			PageDashboard, PageUsers, PageDevices, PageGroups,
			PageIncidents, PageReports,
		},
	},
	RoleAuditor: {
		VisiblePages: []Page{
			PageDashboard, PageAuditLogs, PageReports,
		},
	},
}

// CapabilitiesFor returns the capability row for role. Unknown roles
// get the zero value, which grants nothing.
func CapabilitiesFor(role Role) Capabilities {
	return capabilities[role]
}

// CanView reports whether role may open the given page.
func CanView(role Role, page Page) bool {
	for _, p := range capabilities[role].VisiblePages {
		if p == page {
			return true
		}
	}
	return false
}

// UserCtx returns the signed-in operator's role and display name. If
// no user is in context, or the session carries a role outside the
// closed set, it fails closed with ok=false.
func UserCtx(r *http.Request) (role Role, name string, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return "", "", false
	}
	role, ok = ParseRole(u.Role)
	if !ok {
		return "", "", false
	}
	return role, u.Name, true
}

// Actor formats the audit actor string for the signed-in operator.
func Actor(role Role, name string) string {
	return string(role) + ":" + name
}
