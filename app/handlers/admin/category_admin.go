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

type CategoryAdminHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewCategoryAdminHandler(r *render.Render, st *store.Store, v *validator.Validate) *CategoryAdminHandler {
	return &CategoryAdminHandler{render: r, store: st, validator: v}
}

type categoryForm struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

func (h *CategoryAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"categories": h.store.Categories()})
}

func (h *CategoryAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form categoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	category := models.Category{
		ID:    uuid.New().String(),
		Name:  form.Name,
		Slug:  helpers.Slugify(form.Name),
		Image: form.Image,
	}
	h.store.UpdateCategories(func(categories []models.Category) []models.Category {
		return append(categories, category)
	})

	log.Printf("CategoryAdmin: created %s (%s)", category.ID, category.Slug)
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{"category": category})
}

// Update renames a category. Products keep referencing the old name
// string; see Delete.
func (h *CategoryAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var form categoryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	var updated *models.Category
	h.store.UpdateCategories(func(categories []models.Category) []models.Category {
		for i := range categories {
			if categories[i].ID == id {
				categories[i].Name = form.Name
				categories[i].Slug = helpers.Slugify(form.Name)
				if form.Image != "" {
					categories[i].Image = form.Image
				}
				c := categories[i]
				updated = &c
			}
		}
		return categories
	})

	if updated == nil {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
		return
	}
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"category": updated})
}

// Delete removes the category only. Products referencing it by name
// keep the dangling string — the storefront tolerates it, and the
// operator reassigns products by hand.
func (h *CategoryAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	removed := false
	h.store.UpdateCategories(func(categories []models.Category) []models.Category {
		kept := categories[:0]
		for _, c := range categories {
			if c.ID == id {
				removed = true
				continue
			}
			kept = append(kept, c)
		}
		return kept
	})

	if !removed {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
		return
	}
	log.Printf("CategoryAdmin: deleted %s", id)
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
