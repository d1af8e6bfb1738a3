// internal/app/features/login/handler.go
package login

import (
	"net/http"
	"strings"

	"github.com/suchak/adminconsole/internal/app/system/auth"
	"github.com/suchak/adminconsole/internal/app/system/authz"
	"github.com/suchak/adminconsole/internal/app/system/htmlsanitize"
	"github.com/suchak/adminconsole/internal/app/system/respond"
	"go.uber.org/zap"
)

// Handler signs operators in and reports the current session. There is
// no credential check behind this console: operator identity arrives
// from the perimeter and the console only binds a role to the session.
type Handler struct {
	SessionMgr *auth.SessionManager
	Log        *zap.Logger
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{SessionMgr: sessionMgr, Log: logger}
}

type signInRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// sessionResponse describes the signed-in operator plus what the UI
// should show them.
type sessionResponse struct {
	Name         string             `json:"name"`
	Role         authz.Role         `json:"role"`
	Capabilities authz.Capabilities `json:"capabilities"`
}

// HandleSignIn handles POST /api/login.
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := respond.Decode(r, &req); err != nil {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "malformed request body"})
		return
	}

	name := strings.TrimSpace(htmlsanitize.Strip(req.Name))
	if name == "" {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "name must not be empty", "field": "name"})
		return
	}
	role, ok := authz.ParseRole(req.Role)
	if !ok {
		respond.JSON(w, http.StatusBadRequest, map[string]string{"error": "unknown role", "field": "role"})
		return
	}

	if err := h.SessionMgr.SignIn(w, r, auth.SessionUser{Name: name, Role: string(role)}); err != nil {
		h.Log.Error("sign-in: save session", zap.Error(err))
		respond.JSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	h.Log.Info("operator signed in",
		zap.String("name", name),
		zap.String("role", string(role)))

	respond.JSON(w, http.StatusOK, sessionResponse{
		Name:         name,
		Role:         role,
		Capabilities: authz.CapabilitiesFor(role),
	})
}

// ServeSession handles GET /api/session: it reports the signed-in
// operator, or 401 when there is none.
func (h *Handler) ServeSession(w http.ResponseWriter, r *http.Request) {
	role, name, ok := authz.UserCtx(r)
	if !ok {
		respond.JSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}
	respond.JSON(w, http.StatusOK, sessionResponse{
		Name:         name,
		Role:         role,
		Capabilities: authz.CapabilitiesFor(role),
	})
}
