package models

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the five known states.
// Transitions are admin-set only; there is no automatic progression.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order freezes the cart at submission time. It is created only after
// the notification relay accepted the order payload, and the shopper
// never mutates it afterwards.
type Order struct {
	ID              string      `json:"id"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	Items           []CartItem  `json:"items"`
	Total           int         `json:"total"`
	Status          OrderStatus `json:"status"`
	Date            string      `json:"date"`
	ShippingAddress string      `json:"shippingAddress"`
}
