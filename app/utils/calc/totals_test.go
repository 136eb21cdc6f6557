package calc

import (
	"testing"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func testCart() []models.CartItem {
	return []models.CartItem{
		{Product: models.Product{ID: "1", Price: 1200, SalePrice: intPtr(950)}, Quantity: 1},
		{Product: models.Product{ID: "2", Price: 600}, Quantity: 2},
	}
}

func TestCartSubtotalUsesEffectivePrices(t *testing.T) {
	assert.Equal(t, 950+1200, CartSubtotal(testCart()))
	assert.Equal(t, 0, CartSubtotal(nil))
}

func TestShippingCharge(t *testing.T) {
	assert.Equal(t, 70, ShippingCharge(LocationInsideDhaka))
	assert.Equal(t, 120, ShippingCharge(LocationOutsideDhaka))
	assert.Equal(t, 120, ShippingCharge("sylhet"))
	assert.Equal(t, 120, ShippingCharge(""))
}

func TestOrderTotal(t *testing.T) {
	assert.Equal(t, 2150+70, OrderTotal(testCart(), LocationInsideDhaka))
	assert.Equal(t, 2150+120, OrderTotal(testCart(), LocationOutsideDhaka))
}
