// internal/app/store/adminstate/transforms_test.go
package adminstate_test

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/domain/models"
)

const testActor = "Super Admin:Current User"

var testNow = time.Date(2025, 8, 1, 12, 30, 0, 0, time.UTC)

func TestAppendAuditPrependsAndStampsEntry(t *testing.T) {
	restore := adminstate.SetTimeNow(func() time.Time { return testNow })
	defer restore()

	doc := seedDoc()
	next := adminstate.AppendAudit(doc, models.AuditDraft{
		Actor:    testActor,
		Action:   "User approved",
		Target:   "U-2",
		Details:  "User approved via admin console",
		Severity: models.SeverityInfo,
	})

	if len(doc.AuditLogs) != 1 {
		t.Fatalf("input audit log mutated: got %d entries, want 1", len(doc.AuditLogs))
	}
	if len(next.AuditLogs) != 2 {
		t.Fatalf("audit entries: got %d, want 2", len(next.AuditLogs))
	}

	entry := next.AuditLogs[0]
	if !strings.HasPrefix(entry.ID, "A-") {
		t.Errorf("id: got %q, want A- prefix", entry.ID)
	}
	if entry.Timestamp != "2025-08-01T12:30:00Z" {
		t.Errorf("timestamp: got %q, want %q", entry.Timestamp, "2025-08-01T12:30:00Z")
	}
	if next.AuditLogs[1].ID != "A-seed-1" {
		t.Errorf("existing entry displaced: got %q at index 1", next.AuditLogs[1].ID)
	}
}

func TestSetUserStatus(t *testing.T) {
	tests := []struct {
		action adminstate.UserAction
		userID string
		want   models.UserStatus
		label  string
	}{
		{adminstate.UserApprove, "U-2", models.UserActive, "User approved"},
		{adminstate.UserSuspend, "U-1", models.UserSuspended, "User suspended"},
		{adminstate.UserActivate, "U-3", models.UserActive, "User activated"},
	}
	for _, tc := range tests {
		t.Run(string(tc.action), func(t *testing.T) {
			next, err := adminstate.SetUserStatus(tc.userID, tc.action, testActor)(seedDoc())
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			u, ok := next.UserByID(tc.userID)
			if !ok {
				t.Fatalf("user %s missing after transform", tc.userID)
			}
			if u.Status != tc.want {
				t.Errorf("status: got %q, want %q", u.Status, tc.want)
			}
			entry := next.AuditLogs[0]
			if entry.Action != tc.label {
				t.Errorf("audit action: got %q, want %q", entry.Action, tc.label)
			}
			if entry.Target != tc.userID {
				t.Errorf("audit target: got %q, want %q", entry.Target, tc.userID)
			}
			if entry.Severity != models.SeverityInfo {
				t.Errorf("audit severity: got %q, want %q", entry.Severity, models.SeverityInfo)
			}
		})
	}
}

func TestSetUserStatusUnknownUser(t *testing.T) {
	_, err := adminstate.SetUserStatus("U-404", adminstate.UserApprove, testActor)(seedDoc())
	if !errors.Is(err, adminstate.ErrNotFound) {
		t.Errorf("err: got %v, want ErrNotFound", err)
	}
}

func TestBulkSetUserStatusSkipsUnknownIDs(t *testing.T) {
	next, err := adminstate.BulkSetUserStatus([]string{"U-1", "U-404", "U-2"}, adminstate.UserSuspend, testActor)(seedDoc())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	for _, id := range []string{"U-1", "U-2"} {
		u, _ := next.UserByID(id)
		if u.Status != models.UserSuspended {
			t.Errorf("%s status: got %q, want Suspended", id, u.Status)
		}
	}
	entry := next.AuditLogs[0]
	if entry.Action != "Bulk suspend" {
		t.Errorf("audit action: got %q, want %q", entry.Action, "Bulk suspend")
	}
	if entry.Target != "3 users" {
		t.Errorf("audit target: got %q, want %q", entry.Target, "3 users")
	}
	if got := len(next.AuditLogs); got != 2 {
		t.Errorf("audit entries: got %d, want 2 (one batch entry)", got)
	}
}

func TestBulkSetUserStatusRejectsBadInput(t *testing.T) {
	var verr *adminstate.ValidationError
	if _, err := adminstate.BulkSetUserStatus(nil, adminstate.UserSuspend, testActor)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("empty selection: got %v, want ValidationError", err)
	}
	if _, err := adminstate.BulkSetUserStatus([]string{"U-1"}, adminstate.UserActivate, testActor)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("activate in bulk: got %v, want ValidationError", err)
	}
}

func TestToggleQuarantine(t *testing.T) {
	tests := []struct {
		deviceID string
		want     models.DeviceCompliance
	}{
		{"D-1", models.DeviceRooted},    // Compliant flips to Rooted
		{"D-2", models.DeviceCompliant}, // Rooted flips back
		{"D-3", models.DeviceCompliant}, // Unknown lands Compliant
	}
	for _, tc := range tests {
		t.Run(tc.deviceID, func(t *testing.T) {
			doc := seedDoc()
			next, err := adminstate.ToggleQuarantine(tc.deviceID, testActor, testNow)(doc)
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			dev, _ := next.DeviceByID(tc.deviceID)
			if dev.Compliance != tc.want {
				t.Errorf("compliance: got %q, want %q", dev.Compliance, tc.want)
			}
		})
	}
}

func TestToggleQuarantineOpensIncidentAndAudits(t *testing.T) {
	doc := seedDoc()
	next, err := adminstate.ToggleQuarantine("D-1", testActor, testNow)(doc)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}

	// One replacement carries all three changes.
	if got := len(next.Incidents); got != len(doc.Incidents)+1 {
		t.Fatalf("incidents: got %d, want %d", got, len(doc.Incidents)+1)
	}
	inc := next.Incidents[0]
	if inc.Type != "Device Action" || inc.Severity != models.SeverityWarning || inc.Status != models.IncidentOpen {
		t.Errorf("incident: got type=%q severity=%q status=%q", inc.Type, inc.Severity, inc.Status)
	}
	if inc.UserID != "U-1" {
		t.Errorf("incident user: got %q, want U-1 (device owner)", inc.UserID)
	}
	if inc.Summary != "Device quarantine status changed" {
		t.Errorf("summary: got %q", inc.Summary)
	}
	if want := "Device D-1 quarantine status modified by admin"; inc.Description != want {
		t.Errorf("description: got %q, want %q", inc.Description, want)
	}

	entry := next.AuditLogs[0]
	if entry.Action != "Device Quarantine Toggle" || entry.Severity != models.SeverityWarning {
		t.Errorf("audit: got action=%q severity=%q", entry.Action, entry.Severity)
	}
	if entry.Target != "D-1" {
		t.Errorf("audit target: got %q, want D-1", entry.Target)
	}
}

func TestRerunAttestation(t *testing.T) {
	next, err := adminstate.RerunAttestation("D-2", testNow, 87)(seedDoc())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	dev, _ := next.DeviceByID("D-2")
	if dev.SafetyScore != 87 {
		t.Errorf("safety score: got %d, want 87", dev.SafetyScore)
	}
	if dev.AttestedAt != "2025-08-01T12:30:00Z" {
		t.Errorf("attested_at: got %q, want %q", dev.AttestedAt, "2025-08-01T12:30:00Z")
	}
	entry := next.AuditLogs[0]
	if entry.Actor != models.SystemActor {
		t.Errorf("audit actor: got %q, want %q", entry.Actor, models.SystemActor)
	}
	if entry.Action != "Device Attestation Rerun" || entry.Severity != models.SeverityInfo {
		t.Errorf("audit: got action=%q severity=%q", entry.Action, entry.Severity)
	}
}

func TestRerunAttestationRejectsOutOfRangeScore(t *testing.T) {
	var verr *adminstate.ValidationError
	if _, err := adminstate.RerunAttestation("D-1", testNow, 101)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("score 101: got %v, want ValidationError", err)
	}
}

func TestRollSafetyScoreStaysInBands(t *testing.T) {
	for i := 0; i < 200; i++ {
		s := adminstate.RollSafetyScore()
		healthy := s >= 80 && s <= 99
		degraded := s >= 30 && s <= 69
		if !healthy && !degraded {
			t.Fatalf("score %d outside 80-99 and 30-69", s)
		}
	}
}

func TestCreateGroup(t *testing.T) {
	var id string
	next, err := adminstate.CreateGroup("  Coastal Watch ", models.GroupVeteran, testActor, testNow, &id)(seedDoc())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if !strings.HasPrefix(id, "G-") {
		t.Errorf("id: got %q, want G- prefix", id)
	}
	g := next.Groups[0]
	if g.GroupID != id || g.Name != "Coastal Watch" || g.Type != models.GroupVeteran {
		t.Errorf("group: got %+v", g)
	}
	if g.Members != 1 || len(g.PendingRequests) != 0 || g.Activity != 0 {
		t.Errorf("new group counters: got members=%d requests=%d activity=%d", g.Members, len(g.PendingRequests), g.Activity)
	}

	entry := next.AuditLogs[0]
	if entry.Action != "Group Created" {
		t.Errorf("audit action: got %q", entry.Action)
	}
	if want := `New Veteran group "Coastal Watch" created`; entry.Details != want {
		t.Errorf("audit details: got %q, want %q", entry.Details, want)
	}
}

func TestCreateGroupRejectsBadInput(t *testing.T) {
	var verr *adminstate.ValidationError
	if _, err := adminstate.CreateGroup("   ", models.GroupFamily, testActor, testNow, nil)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("blank name: got %v, want ValidationError", err)
	}
	if _, err := adminstate.CreateGroup("Valid", models.GroupType("Secret"), testActor, testNow, nil)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("unknown type: got %v, want ValidationError", err)
	}
}

func TestResolveJoinRequestApprove(t *testing.T) {
	next, err := adminstate.ResolveJoinRequest("G-1", "U-2", true, testActor)(seedDoc())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	g, _ := next.GroupByID("G-1")
	if g.Members != 13 {
		t.Errorf("members: got %d, want 13", g.Members)
	}
	if len(g.PendingRequests) != 1 || g.PendingRequests[0].UserID != "U-3" {
		t.Errorf("pending requests: got %+v, want only U-3", g.PendingRequests)
	}
	entry := next.AuditLogs[0]
	if entry.Action != "Group Join Request Approved" {
		t.Errorf("audit action: got %q", entry.Action)
	}
	if entry.Target != "G-1:U-2" {
		t.Errorf("audit target: got %q, want %q", entry.Target, "G-1:U-2")
	}
}

func TestResolveJoinRequestReject(t *testing.T) {
	next, err := adminstate.ResolveJoinRequest("G-1", "U-3", false, testActor)(seedDoc())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	g, _ := next.GroupByID("G-1")
	if g.Members != 12 {
		t.Errorf("members: got %d, want 12 (reject must not grow the group)", g.Members)
	}
	if len(g.PendingRequests) != 1 {
		t.Errorf("pending requests: got %d, want 1", len(g.PendingRequests))
	}
	if got := next.AuditLogs[0].Action; got != "Group Join Request Rejected" {
		t.Errorf("audit action: got %q", got)
	}
}

func TestResolveJoinRequestNotFound(t *testing.T) {
	if _, err := adminstate.ResolveJoinRequest("G-404", "U-2", true, testActor)(seedDoc()); !errors.Is(err, adminstate.ErrNotFound) {
		t.Errorf("missing group: got %v, want ErrNotFound", err)
	}
	if _, err := adminstate.ResolveJoinRequest("G-2", "U-2", true, testActor)(seedDoc()); !errors.Is(err, adminstate.ErrNotFound) {
		t.Errorf("missing request: got %v, want ErrNotFound", err)
	}
}

func TestTransitionIncidentLifecycle(t *testing.T) {
	doc := seedDoc()

	// acknowledge: Open -> Investigating, assigns the operator.
	next, err := adminstate.TransitionIncident("I-1", adminstate.IncidentAcknowledge, testActor, "Super Admin:Current User")(doc)
	if err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	inc, _ := next.IncidentByID("I-1")
	if inc.Status != models.IncidentInvestigating {
		t.Errorf("status after acknowledge: got %q", inc.Status)
	}
	if inc.AssignedTo == nil || *inc.AssignedTo != "Super Admin:Current User" {
		t.Errorf("assignee after acknowledge: got %v", inc.AssignedTo)
	}

	// investigate: re-assigns.
	next, err = adminstate.TransitionIncident("I-1", adminstate.IncidentInvestigate, testActor, "Group Admin:Current User")(next)
	if err != nil {
		t.Fatalf("investigate: %v", err)
	}
	inc, _ = next.IncidentByID("I-1")
	if inc.AssignedTo == nil || *inc.AssignedTo != "Group Admin:Current User" {
		t.Errorf("assignee after investigate: got %v", inc.AssignedTo)
	}

	// resolve: terminal, keeps assignee.
	next, err = adminstate.TransitionIncident("I-1", adminstate.IncidentResolve, testActor, "")(next)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	inc, _ = next.IncidentByID("I-1")
	if inc.Status != models.IncidentResolved {
		t.Errorf("status after resolve: got %q", inc.Status)
	}
	if inc.AssignedTo == nil || *inc.AssignedTo != "Group Admin:Current User" {
		t.Errorf("assignee after resolve: got %v", inc.AssignedTo)
	}
	if got := next.AuditLogs[0].Action; got != "Incident resolved" {
		t.Errorf("audit action: got %q", got)
	}
}

func TestTransitionIncidentIllegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		action adminstate.IncidentAction
	}{
		{"acknowledge investigating", "I-2", adminstate.IncidentAcknowledge},
		{"investigate open", "I-1", adminstate.IncidentInvestigate},
		{"resolve open", "I-1", adminstate.IncidentResolve},
		{"acknowledge resolved", "I-3", adminstate.IncidentAcknowledge},
		{"investigate resolved", "I-3", adminstate.IncidentInvestigate},
		{"resolve resolved", "I-3", adminstate.IncidentResolve},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var terr *adminstate.TransitionError
			if _, err := adminstate.TransitionIncident(tc.id, tc.action, testActor, "op")(seedDoc()); !errors.As(err, &terr) {
				t.Errorf("got %v, want TransitionError", err)
			}
		})
	}
}

func TestTransitionIncidentAcknowledgeKeepsExistingAssignee(t *testing.T) {
	doc := seedDoc()
	doc.Incidents[0].AssignedTo = strptr("Auditor:Current User")

	next, err := adminstate.TransitionIncident("I-1", adminstate.IncidentAcknowledge, testActor, "Super Admin:Current User")(doc)
	if err != nil {
		t.Fatalf("acknowledge: %v", err)
	}
	inc, _ := next.IncidentByID("I-1")
	if inc.AssignedTo == nil || *inc.AssignedTo != "Auditor:Current User" {
		t.Errorf("assignee: got %v, want pre-existing Auditor:Current User", inc.AssignedTo)
	}
}

func TestUpdateSetting(t *testing.T) {
	next, err := adminstate.UpdateSetting("max_failed_logins", 5, testActor)(seedDoc())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if next.Settings.MaxFailedLogins != 5 {
		t.Errorf("max_failed_logins: got %d, want 5", next.Settings.MaxFailedLogins)
	}

	next, err = adminstate.UpdateSetting("enable_mfa", false, testActor)(next)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if next.Settings.EnableMFA {
		t.Error("enable_mfa: got true, want false")
	}

	entry := next.AuditLogs[0]
	if entry.Action != "Setting Updated" || entry.Target != "enable_mfa" {
		t.Errorf("audit: got action=%q target=%q", entry.Action, entry.Target)
	}
	if want := `Setting "enable_mfa" changed to "false"`; entry.Details != want {
		t.Errorf("audit details: got %q, want %q", entry.Details, want)
	}
}

func TestUpdateSettingAcceptsJSONNumbers(t *testing.T) {
	// encoding/json hands numeric request fields over as float64.
	next, err := adminstate.UpdateSetting("session_timeout_minutes", float64(45), testActor)(seedDoc())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if next.Settings.SessionTimeoutMinutes != 45 {
		t.Errorf("session_timeout_minutes: got %d, want 45", next.Settings.SessionTimeoutMinutes)
	}
}

func TestUpdateSettingRejectsBadInput(t *testing.T) {
	var verr *adminstate.ValidationError
	if _, err := adminstate.UpdateSetting("favorite_color", "blue", testActor)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("unknown key: got %v, want ValidationError", err)
	}
	if _, err := adminstate.UpdateSetting("enable_mfa", 7, testActor)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("wrong type: got %v, want ValidationError", err)
	}
	if _, err := adminstate.UpdateSetting("max_failed_logins", 2.5, testActor)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("fractional count: got %v, want ValidationError", err)
	}
}

func TestBroadcast(t *testing.T) {
	tests := []struct {
		priority adminstate.BroadcastPriority
		want     models.Severity
	}{
		{adminstate.PriorityHigh, models.SeverityWarning},
		{adminstate.PriorityCritical, models.SeverityCritical},
	}
	for _, tc := range tests {
		t.Run(string(tc.priority), func(t *testing.T) {
			next, err := adminstate.Broadcast("Shelter in place", tc.priority, testActor)(seedDoc())
			if err != nil {
				t.Fatalf("transform: %v", err)
			}
			entry := next.AuditLogs[0]
			if entry.Action != "Emergency Broadcast Sent" {
				t.Errorf("audit action: got %q", entry.Action)
			}
			if entry.Target != "All Users" {
				t.Errorf("audit target: got %q, want %q", entry.Target, "All Users")
			}
			if entry.Severity != tc.want {
				t.Errorf("severity: got %q, want %q", entry.Severity, tc.want)
			}
			if want := fmt.Sprintf("Emergency broadcast sent with %s priority: %q", tc.priority, "Shelter in place"); entry.Details != want {
				t.Errorf("details: got %q, want %q", entry.Details, want)
			}
		})
	}
}

func TestBroadcastRejectsBadInput(t *testing.T) {
	var verr *adminstate.ValidationError
	if _, err := adminstate.Broadcast("  ", adminstate.PriorityHigh, testActor)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("blank message: got %v, want ValidationError", err)
	}
	if _, err := adminstate.Broadcast("hello", adminstate.BroadcastPriority("low"), testActor)(seedDoc()); !errors.As(err, &verr) {
		t.Errorf("bad priority: got %v, want ValidationError", err)
	}
}
