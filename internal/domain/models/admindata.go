// internal/domain/models/admindata.go
package models

// AdminData is the whole console document: every entity array plus the
// seeded dashboard aggregate. The entire document is owned by one
// console session and replaced wholesale on every mutation; there are
// no partial updates. Transform functions receive a *AdminData they
// must treat as immutable and return a structurally new document with
// only the targeted arrays replaced.
type AdminData struct {
	Users          []User          `json:"users"`
	Devices        []Device        `json:"devices"`
	Groups         []Group         `json:"groups"`
	Incidents      []Incident      `json:"incidents"`
	MessagesStats  []MessageStat   `json:"messages_stats"`
	AuditLogs      []AuditLog      `json:"audit_logs"`
	DashboardStats DashboardStats  `json:"dashboard_stats"`
	Settings       ConsoleSettings `json:"settings"`
}

// UserByID returns the user with the given id. Foreign keys in this
// document may dangle, so ok must be checked.
func (d *AdminData) UserByID(id string) (User, bool) {
	for _, u := range d.Users {
		if u.ID == id {
			return u, true
		}
	}
	return User{}, false
}

// DeviceByID returns the device with the given device_id.
func (d *AdminData) DeviceByID(id string) (Device, bool) {
	for _, dev := range d.Devices {
		if dev.DeviceID == id {
			return dev, true
		}
	}
	return Device{}, false
}

// GroupByID returns the group with the given group_id.
func (d *AdminData) GroupByID(id string) (Group, bool) {
	for _, g := range d.Groups {
		if g.GroupID == id {
			return g, true
		}
	}
	return Group{}, false
}

// IncidentByID returns the incident with the given id.
func (d *AdminData) IncidentByID(id string) (Incident, bool) {
	for _, in := range d.Incidents {
		if in.ID == id {
			return in, true
		}
	}
	return Incident{}, false
}
