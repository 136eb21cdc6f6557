package handlers

import (
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/store"
	"github.com/brightifybd/go-storefront/app/utils/calc"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type CartHandler struct {
	render    *render.Render
	store     *store.Store
	validator *validator.Validate
}

func NewCartHandler(r *render.Render, st *store.Store, v *validator.Validate) *CartHandler {
	return &CartHandler{render: r, store: st, validator: v}
}

func (h *CartHandler) cartPayload(location string) map[string]any {
	items := h.store.Cart()
	return map[string]any{
		"items":    items,
		"subtotal": calc.CartSubtotal(items),
		"shipping": calc.ShippingCharge(location),
		"total":    calc.OrderTotal(items, location),
	}
}

// Get returns the cart with totals for the requested delivery zone
// (defaults to inside Dhaka).
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")
	if location == "" {
		location = calc.LocationInsideDhaka
	}
	_ = h.render.JSON(w, http.StatusOK, h.cartPayload(location))
}

type addToCartForm struct {
	ProductID       string            `json:"productId" validate:"required"`
	Quantity        int               `json:"quantity"`
	SelectedVariant map[string]string `json:"selectedVariant,omitempty"`
}

// Add puts a product in the cart. The quantity defaults to one and is
// clamped here, before the store sees it — the store itself does not
// clamp.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var form addToCartForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "productId is required"})
		return
	}

	product, ok := h.store.FindProductByID(form.ProductID)
	if !ok {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	qty := form.Quantity
	if qty < 1 {
		qty = 1
	}

	h.store.AddToCart(product, qty)
	log.Printf("CartHandler: added %s x%d", product.ID, qty)
	_ = h.render.JSON(w, http.StatusOK, h.cartPayload(calc.LocationInsideDhaka))
}

type updateQuantityForm struct {
	Quantity int `json:"quantity" validate:"required"`
}

// UpdateQuantity sets a line quantity, clamped to at least one. To
// drop a line, use Remove.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]

	var form updateQuantityForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	qty := form.Quantity
	if qty < 1 {
		qty = 1
	}

	h.store.UpdateCartQuantity(productID, qty)
	_ = h.render.JSON(w, http.StatusOK, h.cartPayload(calc.LocationInsideDhaka))
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["productId"]
	h.store.RemoveFromCart(productID)
	_ = h.render.JSON(w, http.StatusOK, h.cartPayload(calc.LocationInsideDhaka))
}
