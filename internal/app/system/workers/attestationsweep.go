// internal/app/system/workers/attestationsweep.go
package workers

import (
	"sync"
	"time"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"go.uber.org/zap"
)

// AttestationSweep is a background worker that periodically re-attests
// devices whose attestation is older than the staleness threshold. It
// is disabled by default; operators can still rerun attestation per
// device from the console.
type AttestationSweep struct {
	state     *adminstate.Store
	log       *zap.Logger
	interval  time.Duration
	staleness time.Duration
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewAttestationSweep creates the sweep worker.
//
// Parameters:
//   - state: the console state store
//   - logger: zap logger for logging
//   - interval: how often to sweep (e.g., 15 minutes)
//   - staleness: how old an attestation must be to be refreshed (e.g., 24 hours)
func NewAttestationSweep(state *adminstate.Store, logger *zap.Logger, interval, staleness time.Duration) *AttestationSweep {
	return &AttestationSweep{
		state:     state,
		log:       logger,
		interval:  interval,
		staleness: staleness,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the background sweep loop.
func (w *AttestationSweep) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("attestation sweep worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("staleness", w.staleness))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *AttestationSweep) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("attestation sweep worker stopped")
}

func (w *AttestationSweep) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

// sweep reruns attestation for every device whose last attestation is
// older than the staleness threshold. Each device is its own commit so
// a malformed record cannot block the rest.
func (w *AttestationSweep) sweep() {
	now := time.Now()
	doc, _ := w.state.Snapshot()

	var stale []string
	for _, d := range doc.Devices {
		t, err := time.Parse(time.RFC3339, d.AttestedAt)
		if err != nil || now.Sub(t) > w.staleness {
			stale = append(stale, d.DeviceID)
		}
	}
	if len(stale) == 0 {
		return
	}

	refreshed := 0
	for _, id := range stale {
		score := adminstate.RollSafetyScore()
		if _, _, err := w.state.Apply(adminstate.RerunAttestation(id, now, score)); err != nil {
			w.log.Error("attestation sweep failed for device",
				zap.String("device_id", id), zap.Error(err))
			continue
		}
		refreshed++
	}
	w.log.Info("attestation sweep complete",
		zap.Int("stale", len(stale)),
		zap.Int("refreshed", refreshed))
}
