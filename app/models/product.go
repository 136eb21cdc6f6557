package models

// Variant is a named option group on a product, e.g. "Color" with
// options ["Warm White", "Multicolor"].
type Variant struct {
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Price           int       `json:"price"`
	SalePrice       *int      `json:"salePrice,omitempty"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Images          []string  `json:"images"`
	Stock           int       `json:"stock"`
	IsFeatured      bool      `json:"isFeatured"`
	IsNewArrival    bool      `json:"isNewArrival"`
	Variants        []Variant `json:"variants,omitempty"`
	Tags            []string  `json:"tags"`
	Slug            string    `json:"slug"`
	Reviews         []Review  `json:"reviews,omitempty"`
	VideoURL        string    `json:"videoUrl,omitempty"`
	MetaTitle       string    `json:"metaTitle,omitempty"`
	MetaDescription string    `json:"metaDescription,omitempty"`
}

// EffectivePrice is the charged unit price: the sale price when one is
// set, the base price otherwise.
func (p Product) EffectivePrice() int {
	if p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}

// CoverImage returns the primary image URL, the first entry of Images.
func (p Product) CoverImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
