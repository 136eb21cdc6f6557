package handlers

import (
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/unrolled/render"
)

type HomeHandler struct {
	render *render.Render
	store  *store.Store
}

func NewHomeHandler(r *render.Render, st *store.Store) *HomeHandler {
	return &HomeHandler{render: r, store: st}
}

// Home serves the landing payload in one call: featured products, new
// arrivals, categories, testimonials, blog previews, branding.
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	products := h.store.Products()

	var featured, newArrivals []models.Product
	for _, p := range products {
		if p.IsFeatured {
			featured = append(featured, p)
		}
		if p.IsNewArrival {
			newArrivals = append(newArrivals, p)
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"settings":     NewPublicSettings(h.store.Settings()),
		"featured":     featured,
		"newArrivals":  newArrivals,
		"categories":   h.store.Categories(),
		"testimonials": h.store.Testimonials(),
		"blogPosts":    h.store.BlogPosts(),
		"language":     h.store.Language(),
	})
}

func (h *HomeHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, NewPublicSettings(h.store.Settings()))
}

type languageForm struct {
	Language string `json:"language"`
}

// SetLanguage persists the storefront language ("en" or "bn").
func (h *HomeHandler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var form languageForm
	if err := decodeJSON(r, &form); err != nil || form.Language == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "language is required"})
		return
	}
	h.store.SetLanguage(form.Language)
	log.Printf("HomeHandler: language set to %s", form.Language)
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"language": form.Language})
}
