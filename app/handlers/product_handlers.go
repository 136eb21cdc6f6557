package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewProductHandler(r *render.Render, st *store.Store, v *validator.Validate) *ProductHandler {
	return &ProductHandler{render: r, store: st, validator: v}
}

// List filters the catalog by optional category slug, free-text search
// and flag filters. No pagination: the catalog is small by design.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	categorySlug := q.Get("category")
	search := strings.ToLower(q.Get("search"))
	onlyFeatured := q.Get("featured") == "true"
	onlyNew := q.Get("new") == "true"

	var categoryName string
	if categorySlug != "" {
		category, ok := h.store.FindCategoryBySlug(categorySlug)
		if !ok {
			_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "category not found"})
			return
		}
		categoryName = category.Name
	}

	filtered := []models.Product{}
	for _, p := range h.store.Products() {
		if categoryName != "" && p.Category != categoryName {
			continue
		}
		if onlyFeatured && !p.IsFeatured {
			continue
		}
		if onlyNew && !p.IsNewArrival {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		filtered = append(filtered, p)
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"products": filtered,
		"total":    len(filtered),
	})
}

func matchesSearch(p models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Detail resolves a product by slug. A missing slug is a not-found
// response, never a panic.
func (h *ProductHandler) Detail(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	product, ok := h.store.FindProductBySlug(slug)
	if !ok {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	// Related items share the category, capped at four.
	related := []models.Product{}
	for _, p := range h.store.Products() {
		if p.ID != product.ID && p.Category == product.Category {
			related = append(related, p)
			if len(related) == 4 {
				break
			}
		}
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"product":    product,
		"related":    related,
		"inWishlist": h.store.InWishlist(product.ID),
	})
}

type reviewForm struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

// AddReview appends a review for the signed-in shopper. Reviews stay
// in submission order, oldest first.
func (h *ProductHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]
	if _, ok := h.store.FindProductByID(productID); !ok {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	var form reviewForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "rating must be 1-5 and comment is required"})
		return
	}

	if h.store.CurrentUser() == nil {
		_ = h.render.JSON(w, http.StatusUnauthorized, map[string]string{"error": "login required to review"})
		return
	}

	h.store.AddReview(productID, form.Rating, form.Comment)
	log.Printf("ProductHandler: review added on product %s", productID)

	product, _ := h.store.FindProductByID(productID)
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{"reviews": product.Reviews})
}
