package handlers

import (
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type ContactHandler struct {
	render    *render.Render
	forms     *services.FormsService
	validator *validator.Validate
}

func NewContactHandler(r *render.Render, forms *services.FormsService, v *validator.Validate) *ContactHandler {
	return &ContactHandler{render: r, forms: forms, validator: v}
}

type contactForm struct {
	RequestToken string `json:"requestToken"`
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Message      string `json:"message" validate:"required"`
}

// Submit relays the inquiry; the dashboard record exists only when the
// relay accepted it.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var form contactForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name, email, phone and message are required"})
		return
	}

	err := h.forms.SubmitContact(r.Context(), services.ContactRequest{
		RequestToken: form.RequestToken,
		Name:         form.Name,
		Email:        form.Email,
		Phone:        form.Phone,
		Message:      form.Message,
	})
	if err != nil {
		log.Printf("ContactHandler: submission failed: %v", err)
		_ = h.render.JSON(w, http.StatusBadGateway, map[string]string{"error": "Failed to send message. Please try again."})
		return
	}

	_ = h.render.JSON(w, http.StatusCreated, map[string]string{"status": "sent"})
}

type newsletterForm struct {
	Email string `json:"email" validate:"required,email"`
}

func (h *ContactHandler) Newsletter(w http.ResponseWriter, r *http.Request) {
	var form newsletterForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "a valid email is required"})
		return
	}

	h.forms.SubscribeNewsletter(form.Email)
	_ = h.render.JSON(w, http.StatusCreated, map[string]string{"status": "subscribed"})
}

type recoveryForm struct {
	Email string `json:"email" validate:"required,email"`
}

// Recovery dispatches a password-recovery request to the operator.
func (h *ContactHandler) Recovery(w http.ResponseWriter, r *http.Request) {
	var form recoveryForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "a valid email is required"})
		return
	}

	if err := h.forms.SendRecovery(r.Context(), form.Email); err != nil {
		log.Printf("ContactHandler: recovery dispatch failed: %v", err)
		_ = h.render.JSON(w, http.StatusBadGateway, map[string]string{"error": "Failed to send recovery request. Please try again."})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
