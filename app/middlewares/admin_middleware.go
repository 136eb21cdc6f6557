package middlewares

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/helpers"
	"github.com/brightifybd/go-storefront/app/utils/sessions"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// StaffAuthMiddleware rejects requests without an authenticated staff
// session and stashes the resolved role in the request context.
func StaffAuthMiddleware(staff sessions.StaffSessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := staff.GetRole(r)
			if !ok {
				log.Printf("StaffAuthMiddleware: no staff session for %s", r.URL.Path)
				writeJSON(w, http.StatusUnauthorized, map[string]string{
					"error": "Authentication required.",
				})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyStaffRole, auth.Role(role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireTab enforces the per-role allow-list for one back-office
// surface. A role outside the list gets the terminal denial response —
// the wrapped handler never runs, so the restricted mutation cannot
// happen — with the dashboard as the single recovery action.
func RequireTab(tab auth.Tab) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(helpers.ContextKeyStaffRole).(auth.Role)
			if !auth.CanAccess(role, tab) {
				log.Printf("RequireTab: role %q denied tab %q on %s", role, tab, r.URL.Path)
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error":    "Access denied. This section requires admin access.",
					"recovery": "/admin/dashboard",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// StaffRole pulls the authenticated role out of the request context.
func StaffRole(r *http.Request) auth.Role {
	role, _ := r.Context().Value(helpers.ContextKeyStaffRole).(auth.Role)
	return role
}
