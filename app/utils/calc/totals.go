package calc

import "github.com/brightifybd/go-storefront/app/models"

// Delivery zones. Everything ships from Dhaka; the only pricing input
// is whether the drop-off is inside the metro area.
const (
	LocationInsideDhaka  = "inside"
	LocationOutsideDhaka = "outside"

	shippingInsideDhaka  = 70
	shippingOutsideDhaka = 120
)

// CartSubtotal sums effective line prices across the cart.
func CartSubtotal(items []models.CartItem) int {
	subtotal := 0
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	return subtotal
}

// ShippingCharge returns the flat delivery surcharge for the zone.
// Unknown locations are charged the outside rate.
func ShippingCharge(location string) int {
	if location == LocationInsideDhaka {
		return shippingInsideDhaka
	}
	return shippingOutsideDhaka
}

// OrderTotal is subtotal plus the shipping surcharge. No tax, no
// payment fees.
func OrderTotal(items []models.CartItem, location string) int {
	return CartSubtotal(items) + ShippingCharge(location)
}
