package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/brightifybd/go-storefront/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/unrolled/render"
)

type CheckoutHandler struct {
	render    *render.Render
	checkout  *services.CheckoutService
	validator *validator.Validate
}

func NewCheckoutHandler(r *render.Render, checkout *services.CheckoutService, v *validator.Validate) *CheckoutHandler {
	return &CheckoutHandler{render: r, checkout: checkout, validator: v}
}

type checkoutForm struct {
	RequestToken     string `json:"requestToken"`
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Email            string `json:"email" validate:"omitempty,email"`
	District         string `json:"district" validate:"required"`
	Address          string `json:"address" validate:"required"`
	DeliveryLocation string `json:"deliveryLocation" validate:"required,oneof=inside outside"`
	PaymentMethod    string `json:"paymentMethod" validate:"required,oneof=cod bkash nagad"`
	PaymentNumber    string `json:"paymentNumber"`
	TrxID            string `json:"trxId"`
}

// PlaceOrder submits the cart. Mobile-wallet payments must carry the
// sender number and transaction id; verification stays manual on the
// operator side. Relay failures all collapse into one message for the
// form — the order is not recorded and the cart stays as it was.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var form checkoutForm
	if err := decodeJSON(r, &form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.validator.Struct(form); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "name, phone, district, address, delivery location and payment method are required"})
		return
	}
	if form.PaymentMethod != "cod" && (form.PaymentNumber == "" || form.TrxID == "") {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "payment number and transaction id are required for " + form.PaymentMethod})
		return
	}

	order, err := h.checkout.PlaceOrder(r.Context(), services.CheckoutRequest{
		RequestToken:     form.RequestToken,
		CustomerName:     form.Name,
		CustomerEmail:    form.Email,
		CustomerPhone:    form.Phone,
		District:         form.District,
		Address:          form.Address,
		DeliveryLocation: form.DeliveryLocation,
		PaymentMethod:    form.PaymentMethod,
		PaymentNumber:    form.PaymentNumber,
		TrxID:            form.TrxID,
	})
	if errors.Is(err, services.ErrEmptyCart) {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]string{"error": "Your cart is empty."})
		return
	}
	if err != nil {
		log.Printf("CheckoutHandler: order submission failed: %v", err)
		_ = h.render.JSON(w, http.StatusBadGateway, map[string]string{"error": "Failed to submit order. Please try again."})
		return
	}

	log.Printf("CheckoutHandler: order %s placed, total %d", order.ID, order.Total)
	_ = h.render.JSON(w, http.StatusCreated, map[string]any{"order": order})
}
