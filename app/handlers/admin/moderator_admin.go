package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/helpers"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// moderatorView is the roster row without the access key.
type moderatorView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

type ModeratorAdminHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewModeratorAdminHandler(r *render.Render, st *store.Store, v *validator.Validate) *ModeratorAdminHandler {
	return &ModeratorAdminHandler{render: r, store: st, validator: v}
}

func (h *ModeratorAdminHandler) roster() []moderatorView {
	mods := h.store.Settings().Moderators
	views := make([]moderatorView, 0, len(mods))
	for _, m := range mods {
		views = append(views, moderatorView{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt})
	}
	return views
}

func (h *ModeratorAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"moderators": h.roster()})
}

type moderatorForm struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required,min=4"`
}

// Create grants staff access: the new entry joins the roster inside
// settings and its password immediately resolves to the moderator
// role at the gate.
func (h *ModeratorAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form moderatorForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name and a password of at least 4 characters are required"})
		return
	}

	mod := models.Moderator{
		ID:        uuid.New().String(),
		Name:      form.Name,
		Password:  form.Password,
		CreatedAt: helpers.NowDate(),
	}
	h.store.UpdateSettings(func(settings models.AppSettings) models.AppSettings {
		settings.Moderators = append(settings.Moderators, mod)
		return settings
	})

	log.Printf("ModeratorAdmin: granted access to %s", mod.Name)
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{"moderators": h.roster()})
}

func (h *ModeratorAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed := false
	h.store.UpdateSettings(func(settings models.AppSettings) models.AppSettings {
		kept := make([]models.Moderator, 0, len(settings.Moderators))
		for _, m := range settings.Moderators {
			if m.ID == id {
				removed = true
				continue
			}
			kept = append(kept, m)
		}
		settings.Moderators = kept
		return settings
	})

	if !removed {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "moderator not found"})
		return
	}
	log.Printf("ModeratorAdmin: revoked %s", id)
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"moderators": h.roster()})
}
