// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/suchak/adminconsole/internal/app/system/auth"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
	}
}

// HandleSignOut handles POST /api/logout. Signing out an anonymous
// request still succeeds; the cookie is cleared either way.
func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Error("sign-out: save session", zap.Error(err))
	}
	w.WriteHeader(http.StatusNoContent)
}
