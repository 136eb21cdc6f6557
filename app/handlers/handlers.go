package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/brightifybd/go-storefront/app/models"
)

// decodeJSON reads a JSON request body into dst with unknown fields
// rejected, so typos in client payloads fail loudly.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// PublicSettings is the storefront-safe view of AppSettings: same
// branding fields, no admin password, moderator names without their
// access keys.
type PublicSettings struct {
	SiteName        string   `json:"siteName"`
	LogoURL         string   `json:"logoUrl,omitempty"`
	HeroImage       string   `json:"heroImage,omitempty"`
	PrimaryColor    string   `json:"primaryColor"`
	ContactEmail    string   `json:"contactEmail"`
	PhoneNumber     string   `json:"phoneNumber"`
	Address         string   `json:"address"`
	FacebookURL     string   `json:"facebookUrl"`
	ShowPromoBanner bool     `json:"showPromoBanner"`
	PromoText       string   `json:"promoText"`
	BkashNumber     string   `json:"bkashNumber,omitempty"`
	NagadNumber     string   `json:"nagadNumber,omitempty"`
	Moderators      []string `json:"moderators"`
}

func NewPublicSettings(s models.AppSettings) PublicSettings {
	names := make([]string, 0, len(s.Moderators))
	for _, m := range s.Moderators {
		names = append(names, m.Name)
	}
	return PublicSettings{
		SiteName:        s.SiteName,
		LogoURL:         s.LogoURL,
		HeroImage:       s.HeroImage,
		PrimaryColor:    s.PrimaryColor,
		ContactEmail:    s.ContactEmail,
		PhoneNumber:     s.PhoneNumber,
		Address:         s.Address,
		FacebookURL:     s.FacebookURL,
		ShowPromoBanner: s.ShowPromoBanner,
		PromoText:       s.PromoText,
		BkashNumber:     s.BkashNumber,
		NagadNumber:     s.NagadNumber,
		Moderators:      names,
	}
}

// PublicUser hides the stored password from API responses.
type PublicUser struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

func NewPublicUser(u models.User) PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt}
}
