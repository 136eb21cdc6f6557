package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/middlewares"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/brightifybd/go-storefront/app/utils/sessions"
	"github.com/unrolled/render"
)

// SessionHandler runs the staff gate: one password field, resolved to
// a role against the current settings, held in the session-scoped
// staff cookie.
type SessionHandler struct {
	render       *render.Render
	store        *store.Store
	gate         *auth.Gate
	sessionStore sessions.StaffSessionStore
}

func NewSessionHandler(r *render.Render, st *store.Store, gate *auth.Gate, sessionStore sessions.StaffSessionStore) *SessionHandler {
	return &SessionHandler{render: r, store: st, gate: gate, sessionStore: sessionStore}
}

type staffLoginForm struct {
	Password string `json:"password"`
}

// Login resolves the password to admin or moderator. There is no
// lockout: a wrong password just returns the inline error and the
// visitor tries again.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form staffLoginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil || form.Password == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "password is required"})
		return
	}

	role, err := h.gate.ResolveRole(h.store.Settings(), form.Password)
	if errors.Is(err, auth.ErrInvalidCredential) {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid password. Please try again."})
		return
	}

	if err := h.sessionStore.SetRole(w, r, string(role)); err != nil {
		log.Printf("SessionHandler: failed to save staff session: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to create session."})
		return
	}

	log.Printf("SessionHandler: staff login as %s", role)
	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"role": role,
		"tabs": auth.Tabs(role),
	})
}

func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.Clear(w, r); err != nil {
		log.Printf("SessionHandler: failed to clear staff session: %v", err)
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

// Session reports the authenticated role and its reachable tabs, so
// the console can draw the right sidebar after a reload.
func (h *SessionHandler) Session(w http.ResponseWriter, r *http.Request) {
	role := middlewares.StaffRole(r)
	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"role": role,
		"tabs": auth.Tabs(role),
	})
}
