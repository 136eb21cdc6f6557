package services

import (
	"context"
	"errors"
	"testing"

	"github.com/brightifybd/go-storefront/app/auth"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/storage"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	err      error
	payloads []any
}

func (f *fakeNotifier) Send(_ context.Context, payload any) error {
	if f.err != nil {
		return f.err
	}
	f.payloads = append(f.payloads, payload)
	return nil
}

func checkoutFixture(t *testing.T) (*store.Store, *fakeNotifier, *CheckoutService) {
	t.Helper()
	st := store.New(storage.NewMemory(), auth.PlaintextComparer{})
	st.AddToCart(st.Products()[0], 2)
	notifier := &fakeNotifier{}
	return st, notifier, NewCheckoutService(st, notifier)
}

func validRequest() CheckoutRequest {
	return CheckoutRequest{
		RequestToken:     "tok-1",
		CustomerName:     "Sara Khan",
		CustomerEmail:    "sara@example.com",
		CustomerPhone:    "01711111111",
		District:         "Dhaka",
		Address:          "House 7, Road 3, Gulshan",
		DeliveryLocation: "inside",
		PaymentMethod:    "cod",
	}
}

func TestPlaceOrderCommitsOnRelayAcceptance(t *testing.T) {
	st, notifier, svc := checkoutFixture(t)

	order, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Regexp(t, `^ORD-[0-9A-Z]{9}$`, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, 950*2+70, order.Total)
	assert.Equal(t, "House 7, Road 3, Gulshan, Dhaka", order.ShippingAddress)

	orders := st.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)
	assert.Empty(t, st.Cart())
	require.Len(t, notifier.payloads, 1)
}

func TestPlaceOrderRelayFailureLeavesStateUntouched(t *testing.T) {
	st, notifier, svc := checkoutFixture(t)
	notifier.err = errors.New("relay down")

	order, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.Error(t, err)
	assert.Nil(t, order)

	assert.Empty(t, st.Orders())
	assert.Len(t, st.Cart(), 1)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	st := store.New(storage.NewMemory(), auth.PlaintextComparer{})
	svc := NewCheckoutService(st, &fakeNotifier{})

	_, err := svc.PlaceOrder(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderDeduplicatesByRequestToken(t *testing.T) {
	st, notifier, svc := checkoutFixture(t)

	first, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)

	// Cart is gone after the first commit; refill so a non-dedup path
	// would commit a second order.
	st.AddToCart(st.Products()[0], 1)

	second, err := svc.PlaceOrder(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, st.Orders(), 1)
	assert.Len(t, notifier.payloads, 1)
}

func TestPlaceOrderPayloadSummaries(t *testing.T) {
	st, notifier, svc := checkoutFixture(t)
	product := st.Products()[0]

	req := validRequest()
	req.PaymentMethod = "bkash"
	req.PaymentNumber = "01722222222"
	req.TrxID = "TX12345"

	_, err := svc.PlaceOrder(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, notifier.payloads, 1)
	payload, ok := notifier.payloads[0].(OrderPlacedPayload)
	require.True(t, ok)

	assert.Equal(t, product.Name+" x2 (৳1,900)", payload.Items)
	assert.Equal(t, "৳1,970", payload.Total)
	assert.Equal(t, "৳70", payload.ShippingCharge)
	assert.Equal(t, "BKASH", payload.PaymentMethod)
	assert.Equal(t, "BKASH No: 01722222222, TrxID: TX12345", payload.PaymentDetails)
	assert.Equal(t, "Brightify BD Checkout", payload.Source)
}

func TestSubmitContactRecordsOnlyOnAcceptance(t *testing.T) {
	st := store.New(storage.NewMemory(), auth.PlaintextComparer{})
	notifier := &fakeNotifier{}
	forms := NewFormsService(st, notifier)

	req := ContactRequest{
		RequestToken: "tok-c1",
		Name:         "Sara",
		Email:        "sara@example.com",
		Message:      "Do you ship to Khulna?",
	}

	require.NoError(t, forms.SubmitContact(context.Background(), req))
	subs := st.Submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, models.SubmissionContact, subs[0].Type)
	assert.Equal(t, "Do you ship to Khulna?", subs[0].Data["message"])

	// Same token again: accepted without a second record.
	require.NoError(t, forms.SubmitContact(context.Background(), req))
	assert.Len(t, st.Submissions(), 1)
}

func TestSubmitContactRelayFailure(t *testing.T) {
	st := store.New(storage.NewMemory(), auth.PlaintextComparer{})
	notifier := &fakeNotifier{err: errors.New("relay down")}
	forms := NewFormsService(st, notifier)

	err := forms.SubmitContact(context.Background(), ContactRequest{Name: "Sara"})
	assert.Error(t, err)
	assert.Empty(t, st.Submissions())
}

func TestSubscribeNewsletterIsLocalOnly(t *testing.T) {
	st := store.New(storage.NewMemory(), auth.PlaintextComparer{})
	notifier := &fakeNotifier{}
	forms := NewFormsService(st, notifier)

	forms.SubscribeNewsletter("sara@example.com")

	subs := st.Submissions()
	require.Len(t, subs, 1)
	assert.Equal(t, models.SubmissionNewsletter, subs[0].Type)
	assert.Empty(t, notifier.payloads)
}

func TestSendRecoveryKeepsNothingLocal(t *testing.T) {
	st := store.New(storage.NewMemory(), auth.PlaintextComparer{})
	notifier := &fakeNotifier{}
	forms := NewFormsService(st, notifier)

	require.NoError(t, forms.SendRecovery(context.Background(), "sara@example.com"))

	assert.Empty(t, st.Submissions())
	require.Len(t, notifier.payloads, 1)
	payload, ok := notifier.payloads[0].(RecoveryRequestPayload)
	require.True(t, ok)
	assert.Equal(t, "sara@example.com", payload.Email)
}
