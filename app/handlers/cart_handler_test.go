package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/storage"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"
)

func newCartFixture(t *testing.T) (*store.Store, *CartHandler) {
	t.Helper()
	st := store.New(storage.NewMemory(), auth.PlaintextComparer{})
	return st, NewCartHandler(render.New(), st, validator.New())
}

func TestCartAddClampsQuantityToOne(t *testing.T) {
	st, h := newCartFixture(t)
	product := st.Products()[0]

	req := httptest.NewRequest("POST", "/cart",
		strings.NewReader(`{"productId":"`+product.ID+`","quantity":0}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cart := st.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
}

func TestCartAddUnknownProduct(t *testing.T) {
	st, h := newCartFixture(t)

	req := httptest.NewRequest("POST", "/cart", strings.NewReader(`{"productId":"nope"}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, st.Cart())
}

func TestCartAddRejectsUnknownFields(t *testing.T) {
	_, h := newCartFixture(t)

	req := httptest.NewRequest("POST", "/cart", strings.NewReader(`{"productid":"1"}`))
	rec := httptest.NewRecorder()
	h.Add(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartUpdateQuantityClampsToOne(t *testing.T) {
	st, h := newCartFixture(t)
	product := st.Products()[0]
	st.AddToCart(product, 3)

	req := httptest.NewRequest("PATCH", "/cart/"+product.ID,
		strings.NewReader(`{"quantity":-5}`))
	req = mux.SetURLVars(req, map[string]string{"productId": product.ID})
	rec := httptest.NewRecorder()
	h.UpdateQuantity(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, st.Cart()[0].Quantity)
}

func TestCartGetTotalsFollowLocation(t *testing.T) {
	st, h := newCartFixture(t)
	st.AddToCart(st.Products()[0], 2)

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest("GET", "/cart?location=outside", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Subtotal int `json:"subtotal"`
		Shipping int `json:"shipping"`
		Total    int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1900, body.Subtotal)
	assert.Equal(t, 120, body.Shipping)
	assert.Equal(t, 2020, body.Total)
}
