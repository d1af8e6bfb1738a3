// internal/domain/models/user.go
package models

// UserStatus is the lifecycle state of a console-managed user.
type UserStatus string

const (
	UserActive    UserStatus = "Active"
	UserPending   UserStatus = "Pending"
	UserSuspended UserStatus = "Suspended"
)

// Valid reports whether s is one of the known user statuses.
func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserPending, UserSuspended:
		return true
	}
	return false
}

// User represents a platform user as seen by the admin console.
//
// Users are created externally (the seed document); the console only
// moves them between statuses via approve/suspend/activate. DeviceID
// is a foreign key into AdminData.Devices and may dangle, so
// consumers must treat the lookup as optional.
type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Role      string     `json:"role"` // free-text service role, not a console role
	ServiceID string     `json:"service_id"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Status    UserStatus `json:"status"`
	LastLogin *string    `json:"last_login"` // ISO-8601, nil if never
	DeviceID  *string    `json:"device_id"`
	Verified  bool       `json:"verified"`
	JoinedAt  string     `json:"joined_at"` // ISO-8601
	Groups    int        `json:"groups"`    // membership count
}
