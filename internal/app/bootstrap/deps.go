// internal/app/bootstrap/deps.go
package bootstrap

import (
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/app/system/auditlog"
	"github.com/suchak/adminconsole/internal/app/system/workers"
)

// Deps holds back-end dependencies for the app.
// Extend this struct as the console evolves.
type Deps struct {
	State *adminstate.Store
	Audit *auditlog.Logger
	Sweep *workers.AttestationSweep
}
