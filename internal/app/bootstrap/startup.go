// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the seed document
// is loaded, but before the HTTP handler is built. The attestation sweep
// is opt-in; most deployments rerun attestation on demand instead.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if appCfg.AttestationSweepEnabled {
		logger.Info("starting attestation sweep",
			zap.Duration("interval", appCfg.AttestationSweepEvery),
			zap.Duration("staleness", appCfg.AttestationStaleness))
		deps.Sweep.Start()
	}
	return nil
}
