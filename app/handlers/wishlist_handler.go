package handlers

import (
	"net/http"

	"github.com/brightifybd/go-storefront/app/store"
	"github.com/unrolled/render"
)

type WishlistHandler struct {
	render *render.Render
	store  *store.Store
}

func NewWishlistHandler(r *render.Render, st *store.Store) *WishlistHandler {
	return &WishlistHandler{render: r, store: st}
}

func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"items": h.store.Wishlist()})
}

type toggleWishlistForm struct {
	ProductID string `json:"productId"`
}

// Toggle flips wishlist membership for a product: present becomes
// absent, absent becomes present.
func (h *WishlistHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var form toggleWishlistForm
	if err := decodeJSON(r, &form); err != nil || form.ProductID == "" {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "productId is required"})
		return
	}

	product, ok := h.store.FindProductByID(form.ProductID)
	if !ok {
		_ = h.render.JSON(w, http.StatusNotFound, map[string]string{"error": "product not found"})
		return
	}

	h.store.ToggleWishlist(product)
	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"items":      h.store.Wishlist(),
		"inWishlist": h.store.InWishlist(product.ID),
	})
}
