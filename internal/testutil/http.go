// internal/testutil/http.go
package testutil

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/suchak/adminconsole/internal/app/system/auth"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx, ok := r.Context().Value(chi.RouteCtxKey).(*chi.Context)
	if !ok {
		rctx = chi.NewRouteContext()
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}
	rctx.URLParams.Add(key, value)
	return r
}

// AsSuperAdmin injects a Super Admin session user into the request.
func AsSuperAdmin(r *http.Request) *http.Request {
	return auth.WithTestUser(r, auth.SessionUser{Name: "Current User", Role: "Super Admin"})
}

// AsGroupAdmin injects a Group Admin session user into the request.
func AsGroupAdmin(r *http.Request) *http.Request {
	return auth.WithTestUser(r, auth.SessionUser{Name: "Current User", Role: "Group Admin"})
}

// AsAuditor injects an Auditor session user into the request.
func AsAuditor(r *http.Request) *http.Request {
	return auth.WithTestUser(r, auth.SessionUser{Name: "Current User", Role: "Auditor"})
}
