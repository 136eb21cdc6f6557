package admin

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/unrolled/render"
)

type SettingsAdminHandler struct {
	render *render.Render
	store  *store.Store
}

func NewSettingsAdminHandler(r *render.Render, st *store.Store) *SettingsAdminHandler {
	return &SettingsAdminHandler{render: r, store: st}
}

func (h *SettingsAdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"settings": h.store.Settings()})
}

// settingsForm carries a partial update. Absent fields keep their
// stored value, which is why everything is a pointer.
type settingsForm struct {
	SiteName        *string `json:"siteName"`
	LogoURL         *string `json:"logoUrl"`
	HeroImage       *string `json:"heroImage"`
	PrimaryColor    *string `json:"primaryColor"`
	ContactEmail    *string `json:"contactEmail"`
	PhoneNumber     *string `json:"phoneNumber"`
	Address         *string `json:"address"`
	FacebookURL     *string `json:"facebookUrl"`
	ShowPromoBanner *bool   `json:"showPromoBanner"`
	PromoText       *string `json:"promoText"`
	BkashNumber     *string `json:"bkashNumber"`
	NagadNumber     *string `json:"nagadNumber"`
	AdminPassword   *string `json:"adminPassword"`
}

func (f settingsForm) apply(s models.AppSettings) models.AppSettings {
	if f.SiteName != nil {
		s.SiteName = *f.SiteName
	}
	if f.LogoURL != nil {
		s.LogoURL = *f.LogoURL
	}
	if f.HeroImage != nil {
		s.HeroImage = *f.HeroImage
	}
	if f.PrimaryColor != nil {
		s.PrimaryColor = *f.PrimaryColor
	}
	if f.ContactEmail != nil {
		s.ContactEmail = *f.ContactEmail
	}
	if f.PhoneNumber != nil {
		s.PhoneNumber = *f.PhoneNumber
	}
	if f.Address != nil {
		s.Address = *f.Address
	}
	if f.FacebookURL != nil {
		s.FacebookURL = *f.FacebookURL
	}
	if f.ShowPromoBanner != nil {
		s.ShowPromoBanner = *f.ShowPromoBanner
	}
	if f.PromoText != nil {
		s.PromoText = *f.PromoText
	}
	if f.BkashNumber != nil {
		s.BkashNumber = *f.BkashNumber
	}
	if f.NagadNumber != nil {
		s.NagadNumber = *f.NagadNumber
	}
	if f.AdminPassword != nil && *f.AdminPassword != "" {
		s.AdminPassword = *f.AdminPassword
	}
	return s
}

// Update merges the submitted fields over the stored settings. The
// moderator roster is never touched here; it has its own endpoints.
func (h *SettingsAdminHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form settingsForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	h.store.UpdateSettings(form.apply)

	log.Printf("SettingsAdmin: settings updated")
	_ = h.render.JSON(w, http.StatusOK, map[string]any{"settings": h.store.Settings()})
}
