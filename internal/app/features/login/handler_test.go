// internal/app/features/login/handler_test.go
package login_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/suchak/adminconsole/internal/app/features/login"
	"github.com/suchak/adminconsole/internal/app/system/auth"
	"github.com/suchak/adminconsole/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *login.Handler {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-0123456789abcdef", "suchak-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return login.NewHandler(sm, zap.NewNop())
}

func TestHandleSignIn(t *testing.T) {
	handler := newTestHandler(t)

	body := `{"name":"Current User","role":"Super Admin"}`
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleSignIn(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}
	if cookies := rec.Result().Cookies(); len(cookies) == 0 {
		t.Error("expected a session cookie to be set")
	}

	var resp struct {
		Name         string `json:"name"`
		Role         string `json:"role"`
		Capabilities struct {
			CanMutate         bool `json:"can_mutate"`
			CanAccessSettings bool `json:"can_access_settings"`
		} `json:"capabilities"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Name != "Current User" || resp.Role != "Super Admin" {
		t.Errorf("session: got %q/%q", resp.Name, resp.Role)
	}
	if !resp.Capabilities.CanAccessSettings {
		t.Error("Super Admin capabilities missing settings access")
	}
}

func TestHandleSignIn_RejectsUnknownRole(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"name":"X","role":"Root"}`))
	rec := httptest.NewRecorder()
	handler.HandleSignIn(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleSignIn_RejectsBlankName(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"name":"  ","role":"Auditor"}`))
	rec := httptest.NewRecorder()
	handler.HandleSignIn(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleSignIn_StripsMarkupFromName(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"name":"<b>Current</b> User","role":"Auditor"}`))
	rec := httptest.NewRecorder()
	handler.HandleSignIn(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	var resp struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Name != "Current User" {
		t.Errorf("name: got %q, want markup stripped", resp.Name)
	}
}

func TestServeSession(t *testing.T) {
	handler := newTestHandler(t)

	// No user in context.
	rec := httptest.NewRecorder()
	handler.ServeSession(rec, httptest.NewRequest("GET", "/api/session", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: expected %d, got %d", http.StatusUnauthorized, rec.Code)
	}

	// Signed in.
	rec = httptest.NewRecorder()
	handler.ServeSession(rec, testutil.AsAuditor(httptest.NewRequest("GET", "/api/session", nil)))
	if rec.Code != http.StatusOK {
		t.Errorf("auditor: expected %d, got %d", http.StatusOK, rec.Code)
	}
}
