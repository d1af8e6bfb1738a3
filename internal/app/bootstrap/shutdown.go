// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown cleanly tears down background workers and other resources.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	if appCfg.AttestationSweepEnabled && deps.Sweep != nil {
		logger.Info("stopping attestation sweep")
		deps.Sweep.Stop()
	}
	return nil
}
