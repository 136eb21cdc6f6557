package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier relays form payloads to the store operator. The endpoint is
// an opaque form-relay service: any 2xx means accepted, everything
// else is a failure the caller must surface. There is no retry and no
// local commit on the failure path.
type Notifier interface {
	Send(ctx context.Context, payload any) error
}

// OrderPlacedPayload mirrors what the operator sees in their inbox for
// a new order: customer, flattened item summary, payment details.
type OrderPlacedPayload struct {
	RequestToken   string `json:"requestToken"`
	OrderID        string `json:"orderId"`
	CustomerName   string `json:"customerName"`
	CustomerEmail  string `json:"customerEmail"`
	CustomerPhone  string `json:"customerPhone"`
	District       string `json:"district"`
	Address        string `json:"address"`
	Items          string `json:"items"`
	Total          string `json:"total"`
	PaymentMethod  string `json:"paymentMethod"`
	PaymentDetails string `json:"paymentDetails"`
	ShippingCharge string `json:"shippingCharge"`
	Date           string `json:"date"`
	Source         string `json:"source"`
}

type ContactInquiryPayload struct {
	RequestToken string `json:"requestToken"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Message      string `json:"message"`
	Subject      string `json:"subject"`
	Source       string `json:"source"`
}

type RecoveryRequestPayload struct {
	RequestToken string `json:"requestToken"`
	Email        string `json:"email"`
	SiteName     string `json:"siteName"`
	Timestamp    string `json:"timestamp"`
}

type formRelayClient struct {
	endpoint string
	client   *http.Client
}

// NewFormRelayNotifier builds the HTTP notifier for the configured
// relay endpoint.
func NewFormRelayNotifier(endpoint string) Notifier {
	return &formRelayClient{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *formRelayClient) Send(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode relay payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build relay request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach form relay: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("form relay returned status %d: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
