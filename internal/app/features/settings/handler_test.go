// internal/app/features/settings/handler_test.go
package settings_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/suchak/adminconsole/internal/app/features/settings"
	"github.com/suchak/adminconsole/internal/app/store/adminstate"
	"github.com/suchak/adminconsole/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (*settings.Handler, *adminstate.Store) {
	t.Helper()
	state := testutil.NewState(t)
	return settings.NewHandler(state, nil, zap.NewNop()), state
}

func TestServeSettings(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	handler.ServeSettings(rec, testutil.AsSuperAdmin(httptest.NewRequest("GET", "/api/settings", nil)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Settings struct {
			MetadataRetentionDays int  `json:"metadata_retention_days"`
			EnableMFA             bool `json:"enable_mfa"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Settings.MetadataRetentionDays != 90 || !resp.Settings.EnableMFA {
		t.Errorf("settings: got %+v", resp.Settings)
	}
}

func TestHandleUpdate(t *testing.T) {
	handler, state := newTestHandler(t)

	req := testutil.AsSuperAdmin(httptest.NewRequest("PUT", "/api/settings/session_timeout_minutes", strings.NewReader(`{"value":45}`)))
	req = testutil.WithChiURLParam(req, "key", "session_timeout_minutes")
	rec := httptest.NewRecorder()
	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	doc, _ := state.Snapshot()
	if doc.Settings.SessionTimeoutMinutes != 45 {
		t.Errorf("session_timeout_minutes: got %d, want 45", doc.Settings.SessionTimeoutMinutes)
	}
	if doc.AuditLogs[0].Action != "Setting Updated" || doc.AuditLogs[0].Target != "session_timeout_minutes" {
		t.Errorf("audit: got action=%q target=%q", doc.AuditLogs[0].Action, doc.AuditLogs[0].Target)
	}
}

func TestHandleUpdate_UnknownKey(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.AsSuperAdmin(httptest.NewRequest("PUT", "/api/settings/favorite_color", strings.NewReader(`{"value":"blue"}`)))
	req = testutil.WithChiURLParam(req, "key", "favorite_color")
	rec := httptest.NewRecorder()
	handler.HandleUpdate(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestHandleBroadcast(t *testing.T) {
	handler, state := newTestHandler(t)

	body := `{"message":"Shelter in place","priority":"critical"}`
	req := testutil.AsSuperAdmin(httptest.NewRequest("POST", "/api/settings/broadcast", strings.NewReader(body)))
	rec := httptest.NewRecorder()
	handler.HandleBroadcast(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rec.Code, rec.Body.String())
	}

	doc, _ := state.Snapshot()
	entry := doc.AuditLogs[0]
	if entry.Action != "Emergency Broadcast Sent" || entry.Target != "All Users" {
		t.Errorf("audit: got action=%q target=%q", entry.Action, entry.Target)
	}
	if string(entry.Severity) != "Critical" {
		t.Errorf("severity: got %q, want Critical", entry.Severity)
	}
}

func TestHandleBroadcast_BadPriority(t *testing.T) {
	handler, _ := newTestHandler(t)

	req := testutil.AsSuperAdmin(httptest.NewRequest("POST", "/api/settings/broadcast", strings.NewReader(`{"message":"x","priority":"low"}`)))
	rec := httptest.NewRecorder()
	handler.HandleBroadcast(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
}
