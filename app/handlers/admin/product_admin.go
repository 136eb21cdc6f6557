package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/brightifybd/go-storefront/app/helpers"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductAdminHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewProductAdminHandler(r *render.Render, st *store.Store, v *validator.Validate) *ProductAdminHandler {
	return &ProductAdminHandler{render: r, store: st, validator: v}
}

type productForm struct {
	Name         string           `json:"name" validate:"required"`
	Price        int              `json:"price" validate:"required,gt=0"`
	SalePrice    *int             `json:"salePrice,omitempty"`
	Description  string           `json:"description"`
	Category     string           `json:"category" validate:"required"`
	Images       []string         `json:"images"`
	Stock        int              `json:"stock" validate:"gte=0"`
	IsFeatured   bool             `json:"isFeatured"`
	IsNewArrival bool             `json:"isNewArrival"`
	Variants     []models.Variant `json:"variants,omitempty"`
	Tags         []string         `json:"tags"`
	VideoURL     string           `json:"videoUrl,omitempty"`
}

// toProduct does the caller-side validation the store deliberately
// skips: slug derivation from the name and dropping blank image slots.
func (f productForm) toProduct(id string, reviews []models.Review) models.Product {
	slug := helpers.Slugify(f.Name)
	if slug == "" {
		slug = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	images := make([]string, 0, len(f.Images))
	for _, img := range f.Images {
		if img != "" {
			images = append(images, img)
		}
	}

	return models.Product{
		ID:           id,
		Name:         f.Name,
		Price:        f.Price,
		SalePrice:    f.SalePrice,
		Description:  f.Description,
		Category:     f.Category,
		Images:       images,
		Stock:        f.Stock,
		IsFeatured:   f.IsFeatured,
		IsNewArrival: f.IsNewArrival,
		Variants:     f.Variants,
		Tags:         f.Tags,
		Slug:         slug,
		Reviews:      reviews,
		VideoURL:     f.VideoURL,
	}
}

func (h *ProductAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"products": h.store.Products()})
}

func (h *ProductAdminHandler) decodeForm(w http.ResponseWriter, r *http.Request) (productForm, bool) {
	var form productForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return form, false
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name, category and a positive price are required"})
		return form, false
	}
	if form.SalePrice != nil && *form.SalePrice >= form.Price {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "sale price must be below the base price"})
		return form, false
	}
	return form, true
}

// Create prepends the new product so it shows first in the catalog
// table, matching how the console has always listed fresh items.
func (h *ProductAdminHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	product := form.toProduct(uuid.New().String(), nil)
	h.store.UpdateProducts(func(products []models.Product) []models.Product {
		return append([]models.Product{product}, products...)
	})

	log.Printf("ProductAdmin: created %s (%s)", product.ID, product.Slug)
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{"product": product})
}

// Update replaces the stored product, keeping its id and accumulated
// reviews. The slug is re-derived from the possibly renamed product.
func (h *ProductAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	existing, found := h.store.FindProductByID(id)
	if !found {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	form, ok := h.decodeForm(w, r)
	if !ok {
		return
	}

	updated := form.toProduct(id, existing.Reviews)
	h.store.UpdateProducts(func(products []models.Product) []models.Product {
		for i := range products {
			if products[i].ID == id {
				products[i] = updated
			}
		}
		return products
	})

	_ = h.render.JSON(w, http.StatusOK, map[string]any{"product": updated})
}

func (h *ProductAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, found := h.store.FindProductByID(id); !found {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	h.store.UpdateProducts(func(products []models.Product) []models.Product {
		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept
	})

	log.Printf("ProductAdmin: deleted %s", id)
	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// ToggleFeatured flips the featured flag from the catalog table.
func (h *ProductAdminHandler) ToggleFeatured(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if _, found := h.store.FindProductByID(id); !found {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	h.store.UpdateProducts(func(products []models.Product) []models.Product {
		for i := range products {
			if products[i].ID == id {
				products[i].IsFeatured = !products[i].IsFeatured
			}
		}
		return products
	})

	product, _ := h.store.FindProductByID(id)
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"product": product})
}
