package models

// Testimonial is static marketing copy shipped with the seed dataset.
// It is served read-only and never persisted.
type Testimonial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
	Avatar  string `json:"avatar"`
}
