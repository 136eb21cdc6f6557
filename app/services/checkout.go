package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/brightifybd/go-storefront/app/helpers"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/brightifybd/go-storefront/app/utils/calc"
	"github.com/brightifybd/go-storefront/app/utils/format"
	"github.com/google/uuid"
)

// CheckoutRequest is the validated order form as the handler hands it
// over. RequestToken is client-generated; resubmits with the same
// token are answered from the first result instead of committing a
// second order.
type CheckoutRequest struct {
	RequestToken     string
	CustomerName     string
	CustomerEmail    string
	CustomerPhone    string
	District         string
	Address          string
	DeliveryLocation string
	PaymentMethod    string
	PaymentNumber    string
	TrxID            string
}

var ErrEmptyCart = fmt.Errorf("cart is empty")

// CheckoutService turns the current cart into an order. The relay POST
// happens first; only an accepted payload commits the local order and
// clears the cart. Those are two separate persisted effects on
// purpose — downstream code relies on eventual consistency after the
// call returns, not on atomicity between the two keys.
type CheckoutService struct {
	store    *store.Store
	notifier Notifier

	mu        sync.Mutex
	completed map[string]string // request token -> order id
}

func NewCheckoutService(st *store.Store, notifier Notifier) *CheckoutService {
	return &CheckoutService{
		store:     st,
		notifier:  notifier,
		completed: map[string]string{},
	}
}

// PlaceOrder submits the cart. On relay failure no order is recorded
// and the cart is untouched; the caller surfaces a single failure
// message for the form.
func (s *CheckoutService) PlaceOrder(ctx context.Context, req CheckoutRequest) (*models.Order, error) {
	items := s.store.Cart()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	token := req.RequestToken
	if token == "" {
		token = uuid.New().String()
	}

	s.mu.Lock()
	if orderID, done := s.completed[token]; done {
		s.mu.Unlock()
		return s.findOrder(orderID), nil
	}
	s.mu.Unlock()

	shipping := calc.ShippingCharge(req.DeliveryLocation)
	total := calc.OrderTotal(items, req.DeliveryLocation)

	order := models.Order{
		ID:              helpers.NewOrderID(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		Items:           items,
		Total:           total,
		Status:          models.OrderStatusPending,
		Date:            helpers.NowDate(),
		ShippingAddress: fmt.Sprintf("%s, %s", req.Address, req.District),
	}

	payload := OrderPlacedPayload{
		RequestToken:   token,
		OrderID:        order.ID,
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerPhone:  req.CustomerPhone,
		District:       req.District,
		Address:        req.Address,
		Items:          summarizeItems(items),
		Total:          format.FormatTaka(total),
		PaymentMethod:  strings.ToUpper(req.PaymentMethod),
		PaymentDetails: paymentDetails(req),
		ShippingCharge: format.FormatTaka(shipping),
		Date:           time.Now().Format("2006-01-02 15:04:05"),
		Source:         s.store.Settings().SiteName + " Checkout",
	}

	if err := s.notifier.Send(ctx, payload); err != nil {
		return nil, fmt.Errorf("order submission failed: %w", err)
	}

	// Two independent write-through effects, not one atomic commit.
	s.store.AddOrder(order)
	s.store.ClearCart()

	s.mu.Lock()
	s.completed[token] = order.ID
	s.mu.Unlock()

	return &order, nil
}

func (s *CheckoutService) findOrder(id string) *models.Order {
	for _, o := range s.store.Orders() {
		if o.ID == id {
			return &o
		}
	}
	return nil
}

func summarizeItems(items []models.CartItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s x%d (%s)", item.Name, item.Quantity, format.FormatTaka(item.LineTotal())))
	}
	return strings.Join(parts, ", ")
}

func paymentDetails(req CheckoutRequest) string {
	if req.PaymentMethod == "cod" {
		return "Cash on Delivery"
	}
	return fmt.Sprintf("%s No: %s, TrxID: %s", strings.ToUpper(req.PaymentMethod), req.PaymentNumber, req.TrxID)
}
