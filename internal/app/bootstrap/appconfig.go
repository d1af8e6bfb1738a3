// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: HTTP ports, TLS, logging
// level and CORS all live in WAFFLE's CoreConfig.
type AppConfig struct {
	// Seed document configuration
	SeedPath string // Path to the admin data seed document (JSON)

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: suchak-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Audit logging
	AuditLogAdmin string // Admin event mirroring: "all", "db", "log", or "off"

	// Attestation sweep worker
	AttestationSweepEnabled bool          // Run the periodic device attestation sweep
	AttestationSweepEvery   time.Duration // Interval between sweep passes
	AttestationStaleness    time.Duration // Age after which a device check is considered stale
}
