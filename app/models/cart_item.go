package models

// CartItem carries a full snapshot of the product as it looked when it
// was added, not a reference into the catalog. Later catalog edits do
// not touch items already in a cart.
type CartItem struct {
	Product
	Quantity        int               `json:"quantity"`
	SelectedVariant map[string]string `json:"selectedVariant,omitempty"`
}

// LineTotal is the charged price for this line: effective unit price
// times quantity.
func (ci CartItem) LineTotal() int {
	return ci.EffectivePrice() * ci.Quantity
}
