// internal/testutil/fixtures.go
package testutil

import (
	"testing"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/domain/models"
)

// StrPtr returns a pointer to s, for optional model fields.
func StrPtr(s string) *string { return &s }

// SeedDoc builds the document handler tests run against. It carries a
// little of everything: users in all three statuses, devices in all
// compliance states, a group with pending join requests, incidents in
// every stage, and a pre-existing audit entry.
func SeedDoc() *models.AdminData {
	return &models.AdminData{
		Users: []models.User{
			{ID: "U-1", Name: "Asha Rao", Role: "Field Officer", ServiceID: "SVC-100", Email: "asha@example.org", Phone: "+91-98-0001", Status: models.UserActive, LastLogin: StrPtr("2025-08-01T07:00:00Z"), DeviceID: StrPtr("D-1"), Verified: true, JoinedAt: "2025-01-10T00:00:00Z", Groups: 2},
			{ID: "U-2", Name: "Vikram Singh", Role: "Analyst", ServiceID: "SVC-101", Email: "vikram@example.org", Phone: "+91-98-0002", Status: models.UserPending, JoinedAt: "2025-02-01T00:00:00Z"},
			{ID: "U-3", Name: "Meera Nair", Role: "Operator", ServiceID: "SVC-102", Email: "meera@example.org", Phone: "+91-98-0003", Status: models.UserSuspended, DeviceID: StrPtr("D-2"), JoinedAt: "2025-03-05T00:00:00Z", Groups: 1},
			{ID: "U-4", Name: "Rohit Sharma", Role: "Field Officer", ServiceID: "SVC-103", Email: "rohit@example.org", Phone: "+91-98-0004", Status: models.UserActive, DeviceID: StrPtr("D-3"), Verified: true, JoinedAt: "2025-04-12T00:00:00Z", Groups: 1},
		},
		Devices: []models.Device{
			{DeviceID: "D-1", UserID: "U-1", Model: "Pixel 8", OS: "Android 15", Compliance: models.DeviceCompliant, AttestedAt: "2025-07-20T00:00:00Z", IP: "10.0.0.4", SafetyScore: 92},
			{DeviceID: "D-2", UserID: "U-3", Model: "iPhone 15", OS: "iOS 18", Compliance: models.DeviceRooted, AttestedAt: "2025-07-21T00:00:00Z", IP: "10.0.0.5", SafetyScore: 41},
			{DeviceID: "D-3", UserID: "U-4", Model: "Galaxy S24", OS: "Android 15", Compliance: models.DeviceUnknown, AttestedAt: "2025-07-22T00:00:00Z", IP: "10.0.0.6", SafetyScore: 55},
		},
		Groups: []models.Group{
			{GroupID: "G-1", Name: "Northern Command", Type: models.GroupOperational, Members: 12, Activity: 340, CreatedAt: "2025-01-01T00:00:00Z",
				PendingRequests: []models.JoinRequest{
					{UserID: "U-2", UserName: "Vikram Singh", RequestedAt: "2025-07-01T00:00:00Z", Reason: "transfer"},
				}},
			{GroupID: "G-2", Name: "Families North", Type: models.GroupFamily, Members: 41, PendingRequests: []models.JoinRequest{}, Activity: 120, CreatedAt: "2025-02-01T00:00:00Z"},
		},
		Incidents: []models.Incident{
			{ID: "I-1", Type: "Login Anomaly", Severity: models.SeverityWarning, Timestamp: "2025-07-10T08:00:00Z", UserID: "U-1", Status: models.IncidentOpen, Summary: "Repeated failed logins", Description: "Five failed logins inside two minutes"},
			{ID: "I-2", Type: "Policy Violation", Severity: models.SeverityCritical, Timestamp: "2025-07-11T09:00:00Z", UserID: "U-2", Status: models.IncidentInvestigating, Summary: "Screenshot attempt", AssignedTo: StrPtr("Super Admin:Current User")},
			{ID: "I-3", Type: "Device Action", Severity: models.SeverityInfo, Timestamp: "2025-07-12T10:00:00Z", UserID: "U-3", Status: models.IncidentResolved, Summary: "Attestation pass", AssignedTo: StrPtr("Auditor:Current User")},
		},
		MessagesStats: []models.MessageStat{
			{GroupID: "G-1", Date: "2025-07-01", Messages: 120},
			{GroupID: "G-1", Date: "2025-07-02", Messages: 95},
			{GroupID: "G-2", Date: "2025-07-01", Messages: 40},
		},
		AuditLogs: []models.AuditLog{
			{ID: "A-seed-1", Actor: "Super Admin:Current User", Action: "Setting Updated", Target: "enable_mfa", Timestamp: "2025-07-01T00:00:00Z", Details: `Setting "enable_mfa" changed to "true"`, Severity: models.SeverityInfo},
		},
		DashboardStats: models.DashboardStats{
			ActiveUsers:       128,
			PendingApprovals:  4,
			CriticalIncidents: 1,
			DailyMessages:     255,
			DeviceCompliance: models.DeviceComplianceStats{
				Compliant:    86,
				NonCompliant: 9,
				Unknown:      5,
			},
			UserActivity30d: []models.ActivityPoint{
				{Date: "2025-07-01", Users: 50},
				{Date: "2025-07-02", Users: 57},
			},
		},
		Settings: models.DefaultConsoleSettings(),
	}
}

// NewState wraps SeedDoc in a Store.
func NewState(t *testing.T) *adminstate.Store {
	t.Helper()
	return adminstate.New(SeedDoc())
}
