// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the SUCHAK admin console.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: seed_path, session_name, etc.
//   - Environment variables: SUCHAK_SEED_PATH, SUCHAK_SESSION_NAME, etc.
//   - Command-line flags: --seed_path, --session_name, etc.
var appConfigKeys = []config.AppKey{
	{Name: "seed_path", Default: "./data/admin_data.json", Desc: "Path to the admin data seed document"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "suchak-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},

	// Audit logging settings
	{Name: "audit_log_admin", Default: "all", Desc: "Admin event logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Attestation sweep worker
	{Name: "attestation_sweep_enabled", Default: false, Desc: "Run the periodic device attestation sweep"},
	{Name: "attestation_sweep_interval", Default: "1h", Desc: "Interval between attestation sweep passes (e.g., 30m, 1h)"},
	{Name: "attestation_staleness", Default: "24h", Desc: "Age after which a device compliance check is considered stale"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "SUCHAK", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SeedPath: appValues.String("seed_path"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),

		AuditLogAdmin: appValues.String("audit_log_admin"),

		AttestationSweepEnabled: appValues.Bool("attestation_sweep_enabled"),
		AttestationSweepEvery:   appValues.Duration("attestation_sweep_interval", time.Hour),
		AttestationStaleness:    appValues.Duration("attestation_staleness", 24*time.Hour),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// The seed document is checked here so a bad path fails fast instead of
// surfacing as an empty console.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.SeedPath == "" {
		return fmt.Errorf("seed_path must be set")
	}
	if _, err := os.Stat(appCfg.SeedPath); err != nil {
		logger.Error("seed document not readable", zap.String("seed_path", appCfg.SeedPath), zap.Error(err))
		return fmt.Errorf("seed document %q: %w", appCfg.SeedPath, err)
	}

	switch appCfg.AuditLogAdmin {
	case "all", "db", "log", "off":
	default:
		return fmt.Errorf("audit_log_admin must be 'all', 'db', 'log', or 'off', got %q", appCfg.AuditLogAdmin)
	}

	if appCfg.AttestationSweepEnabled && appCfg.AttestationSweepEvery <= 0 {
		return fmt.Errorf("attestation_sweep_interval must be positive when the sweep is enabled")
	}

	return nil
}
