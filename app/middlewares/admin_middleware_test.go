package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStaffStore struct {
	role string
	ok   bool
}

func (f fakeStaffStore) GetRole(*http.Request) (string, bool) { return f.role, f.ok }
func (f fakeStaffStore) SetRole(http.ResponseWriter, *http.Request, string) error {
	return nil
}
func (f fakeStaffStore) Clear(http.ResponseWriter, *http.Request) error { return nil }

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestStaffAuthMiddlewareRejectsAnonymous(t *testing.T) {
	next, called := okHandler()
	handler := StaffAuthMiddleware(fakeStaffStore{})(next)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestStaffAuthMiddlewarePutsRoleInContext(t *testing.T) {
	var seen auth.Role
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = StaffRole(r)
	})
	handler := StaffAuthMiddleware(fakeStaffStore{role: "moderator", ok: true})(next)

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/admin/dashboard", nil))

	assert.Equal(t, auth.RoleModerator, seen)
}

func TestRequireTabDeniesModeratorOnAdminOnlySurface(t *testing.T) {
	next, called := okHandler()
	handler := StaffAuthMiddleware(fakeStaffStore{role: "moderator", ok: true})(
		RequireTab(auth.TabSettings)(next))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("PUT", "/admin/settings", nil))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "/admin/dashboard", body["recovery"])
	assert.NotEmpty(t, body["error"])
}

func TestRequireTabAllowsModeratorOnSharedSurface(t *testing.T) {
	next, called := okHandler()
	handler := StaffAuthMiddleware(fakeStaffStore{role: "moderator", ok: true})(
		RequireTab(auth.TabProducts)(next))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireTabAllowsAdminEverywhere(t *testing.T) {
	for _, tab := range auth.Tabs(auth.RoleAdmin) {
		next, called := okHandler()
		handler := StaffAuthMiddleware(fakeStaffStore{role: "admin", ok: true})(
			RequireTab(tab)(next))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/"+string(tab), nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, *called)
	}
}
