// internal/domain/models/device.go
package models

// DeviceCompliance is a device's security-posture classification,
// derived from its most recent attestation.
type DeviceCompliance string

const (
	DeviceCompliant DeviceCompliance = "Compliant"
	DeviceRooted    DeviceCompliance = "Rooted"
	DeviceUnknown   DeviceCompliance = "Unknown"
)

// Valid reports whether c is one of the known compliance verdicts.
func (c DeviceCompliance) Valid() bool {
	switch c {
	case DeviceCompliant, DeviceRooted, DeviceUnknown:
		return true
	}
	return false
}

// Device is an enrolled endpoint. UserID is a foreign key into
// AdminData.Users and may dangle.
type Device struct {
	DeviceID    string           `json:"device_id"`
	UserID      string           `json:"user_id"`
	Model       string           `json:"model"`
	OS          string           `json:"os"`
	Compliance  DeviceCompliance `json:"compliance"`
	AttestedAt  string           `json:"attested_at"` // ISO-8601
	IP          string           `json:"ip"`
	SafetyScore int              `json:"safety_score"` // 0–100
}
