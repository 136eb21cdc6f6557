package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/brightifybd/go-storefront/app/helpers"
	"github.com/brightifybd/go-storefront/app/models"
	"github.com/brightifybd/go-storefront/app/store"
	"github.com/google/uuid"
)

// ContactRequest is the validated contact form.
type ContactRequest struct {
	RequestToken string
	Name         string
	Email        string
	Phone        string
	Message      string
}

// FormsService owns the two remaining relay flows (contact inquiry,
// password recovery dispatch) plus the local-only newsletter signup.
type FormsService struct {
	store    *store.Store
	notifier Notifier

	mu        sync.Mutex
	delivered map[string]struct{}
}

func NewFormsService(st *store.Store, notifier Notifier) *FormsService {
	return &FormsService{
		store:     st,
		notifier:  notifier,
		delivered: map[string]struct{}{},
	}
}

// SubmitContact relays the inquiry and, only on acceptance, records
// the submission for the back-office dashboard. A repeated request
// token reports success without a second record.
func (s *FormsService) SubmitContact(ctx context.Context, req ContactRequest) error {
	token := req.RequestToken
	if token == "" {
		token = uuid.New().String()
	}

	s.mu.Lock()
	if _, done := s.delivered[token]; done {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	payload := ContactInquiryPayload{
		RequestToken: token,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		Subject:      "New Contact Form Inquiry",
		Source:       s.store.Settings().SiteName + " Contact Page",
	}

	if err := s.notifier.Send(ctx, payload); err != nil {
		return fmt.Errorf("contact submission failed: %w", err)
	}

	s.store.AddSubmission(models.SubmissionContact, map[string]string{
		"name":    req.Name,
		"email":   req.Email,
		"phone":   req.Phone,
		"message": req.Message,
	})

	s.mu.Lock()
	s.delivered[token] = struct{}{}
	s.mu.Unlock()

	return nil
}

// SubscribeNewsletter is local-only: no relay call, just a submission
// record.
func (s *FormsService) SubscribeNewsletter(email string) {
	s.store.AddSubmission(models.SubmissionNewsletter, map[string]string{"email": email})
}

// SendRecovery dispatches a password-recovery request to the relay.
// Nothing is recorded locally; the operator follows up by hand.
func (s *FormsService) SendRecovery(ctx context.Context, email string) error {
	payload := RecoveryRequestPayload{
		RequestToken: uuid.New().String(),
		Email:        email,
		SiteName:     s.store.Settings().SiteName,
		Timestamp:    helpers.NowISO(),
	}
	if err := s.notifier.Send(ctx, payload); err != nil {
		return fmt.Errorf("recovery dispatch failed: %w", err)
	}
	return nil
}
