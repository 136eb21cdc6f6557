package models

// Category groups products by display name. Products reference the
// category by its Name string, not its ID, so deleting a category
// leaves products pointing at a name that no longer exists. That
// dangling reference is tolerated on purpose; the shop pages simply
// show such products under "all".
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Image string `json:"image"`
}
