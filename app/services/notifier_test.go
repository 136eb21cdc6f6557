package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormRelayNotifierAcceptsTwoHundreds(t *testing.T) {
	var received ContactInquiryPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	notifier := NewFormRelayNotifier(server.URL)
	err := notifier.Send(context.Background(), ContactInquiryPayload{Name: "Sara", Email: "sara@example.com"})

	require.NoError(t, err)
	assert.Equal(t, "Sara", received.Name)
}

func TestFormRelayNotifierRejectsNonTwoHundreds(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	notifier := NewFormRelayNotifier(server.URL)
	err := notifier.Send(context.Background(), ContactInquiryPayload{Name: "Sara"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestFormRelayNotifierUnreachableEndpoint(t *testing.T) {
	notifier := NewFormRelayNotifier("http://127.0.0.1:1")
	err := notifier.Send(context.Background(), RecoveryRequestPayload{Email: "sara@example.com"})
	assert.Error(t, err)
}
