package handlers

import (
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/store"
	"github.com/brightifybd/go-storefront/app/utils/sessions"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

// AuthHandler covers shopper accounts. Staff login is a separate
// surface with its own session store; see handlers/admin.
type AuthHandler struct {
	render       *render.Render
	store        *store.Store
	sessionStore sessions.ShopperSessionStore
	validator    *validator.Validate
}

func NewAuthHandler(r *render.Render, st *store.Store, sessionStore sessions.ShopperSessionStore, v *validator.Validate) *AuthHandler {
	return &AuthHandler{render: r, store: st, sessionStore: sessionStore, validator: v}
}

type registerForm struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// Register creates the account and signs it in. Duplicate emails are
// accepted; the earlier account wins at login.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var form registerForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name, valid email and a password of at least 4 characters are required"})
		return
	}

	user := h.store.Register(form.Name, form.Email, form.Password)
	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler: failed to set shopper session: %v", err)
	}

	log.Printf("AuthHandler: registered %s", form.Email)
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{"user": NewPublicUser(user)})
}

type loginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "email and password are required"})
		return
	}

	user, ok := h.store.Login(form.Email, form.Password)
	if !ok {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "Invalid email or password"})
		return
	}

	if err := h.sessionStore.SetUserID(w, r, user.ID); err != nil {
		log.Printf("AuthHandler: failed to set shopper session: %v", err)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{"user": NewPublicUser(*user)})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.store.Logout()
	if err := h.sessionStore.ClearUserID(w, r); err != nil {
		log.Printf("AuthHandler: failed to clear shopper session: %v", err)
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.store.CurrentUser()
	if user == nil {
		_ = h.render.JSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"user": NewPublicUser(*user)})
}
