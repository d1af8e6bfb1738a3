// internal/app/features/logout/handler_test.go
package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/suchak/adminconsole/internal/app/features/logout"
	"github.com/suchak/adminconsole/internal/app/system/auth"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) *logout.Handler {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-0123456789abcdef", "suchak-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return logout.NewHandler(sm, zap.NewNop())
}

func TestHandleSignOut(t *testing.T) {
	handler := newTestHandler(t)

	req := httptest.NewRequest("POST", "/api/logout", nil)
	rec := httptest.NewRecorder()
	handler.HandleSignOut(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}

	// The deletion cookie must be expired.
	for _, c := range rec.Result().Cookies() {
		if c.Name == "suchak-session" && c.MaxAge >= 0 {
			t.Errorf("session cookie not expired: MaxAge=%d", c.MaxAge)
		}
	}
}
