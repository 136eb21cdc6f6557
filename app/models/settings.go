package models

// Moderator is a staff credential stored inside AppSettings. Matching
// a moderator password grants the restricted back-office role.
type Moderator struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Password  string `json:"password"`
	CreatedAt string `json:"createdAt"`
}

// AppSettings is the singleton store configuration, mutated wholesale
// through a merge-and-replace update from the admin console.
type AppSettings struct {
	SiteName        string      `json:"siteName"`
	LogoURL         string      `json:"logoUrl,omitempty"`
	HeroImage       string      `json:"heroImage,omitempty"`
	PrimaryColor    string      `json:"primaryColor"`
	ContactEmail    string      `json:"contactEmail"`
	PhoneNumber     string      `json:"phoneNumber"`
	Address         string      `json:"address"`
	FacebookURL     string      `json:"facebookUrl"`
	ShowPromoBanner bool        `json:"showPromoBanner"`
	PromoText       string      `json:"promoText"`
	BkashNumber     string      `json:"bkashNumber,omitempty"`
	NagadNumber     string      `json:"nagadNumber,omitempty"`
	AdminPassword   string      `json:"adminPassword,omitempty"`
	Moderators      []Moderator `json:"moderators"`
}
