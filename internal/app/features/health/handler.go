// internal/app/features/health/handler.go
package health

import (
	"encoding/json"
	"net/http"

	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	State *adminstate.Store
	Log   *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(state *adminstate.Store, logger *zap.Logger) *Handler {
	return &Handler{State: state, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Document string `json:"document"`
	Version  uint64 `json:"version"`
	Message  string `json:"message,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "document":"loaded", "version":N }
//
// The document is loaded once at startup, so the only failure mode
// after boot is a missing store, which answers 503.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.State == nil {
		h.Log.Error("health-check: state store not initialized")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(healthResponse{
			Status:   "error",
			Document: "missing",
			Message:  "State document unavailable",
		})
		return
	}

	_ = json.NewEncoder(w).Encode(healthResponse{
		Status:   "ok",
		Document: "loaded",
		Version:  h.State.Version(),
	})
}
