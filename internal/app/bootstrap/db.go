// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/auditlog"
	"github.com/suchak/adminconsole/internal/app/system/workers"
)

// ConnectDB loads the admin data document into the in-memory store.
//
// The console keeps its entire working set in one versioned document, so
// "connecting" means reading and validating the seed file. A document
// backend (Mongo, Postgres) would slot in here if persistence is added.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (Deps, error) {
	state, err := adminstate.Load(appCfg.SeedPath)
	if err != nil {
		logger.Error("loading admin data seed failed", zap.String("seed_path", appCfg.SeedPath), zap.Error(err))
		return Deps{}, fmt.Errorf("load admin data: %w", err)
	}

	doc, version := state.Snapshot()
	logger.Info("admin data loaded",
		zap.String("seed_path", appCfg.SeedPath),
		zap.Uint64("version", version),
		zap.Int("users", len(doc.Users)),
		zap.Int("devices", len(doc.Devices)),
		zap.Int("groups", len(doc.Groups)),
		zap.Int("incidents", len(doc.Incidents)))

	deps := Deps{
		State: state,
		Audit: auditlog.New(logger, auditlog.Config{Admin: appCfg.AuditLogAdmin}),
		Sweep: workers.NewAttestationSweep(state, logger, appCfg.AttestationSweepEvery, appCfg.AttestationStaleness),
	}
	return deps, nil
}

// EnsureSchema sets up indexes or schema as needed. The in-memory store
// normalizes the document on load, so there is nothing to do here.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) error {
	return nil
}
