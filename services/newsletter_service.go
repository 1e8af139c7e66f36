package services

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"

	"shophub/models"
	"shophub/repositories"
)

var ErrInvalidEmail = errors.New("invalid email address")

type NewsletterService struct {
	newsletterRepo *repositories.NewsletterRepository
	emailService   *EmailService
}

// NewNewsletterService wires the subscriber store and, when SMTP is
// configured, the welcome-email sender. emailService may be nil.
func NewNewsletterService(newsletterRepo *repositories.NewsletterRepository, emailService *EmailService) *NewsletterService {
	return &NewsletterService{newsletterRepo: newsletterRepo, emailService: emailService}
}

func (s *NewsletterService) Subscribe(ctx context.Context, req *models.SubscribeRequest) (*models.Subscriber, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrInvalidEmail
	}

	prefs := models.SubscriberPreferences{Deals: true, Reviews: true, Guides: true, Newsletter: true}
	if req.Preferences != nil {
		prefs = *req.Preferences
	}

	existing, err := s.newsletterRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}
	isNew := existing == nil || existing.Status == models.SubscriberUnsubscribed

	sub, err := s.newsletterRepo.Subscribe(ctx, email, strings.TrimSpace(req.Name), prefs)
	if err != nil {
		return nil, err
	}

	// Welcome email failures never fail the subscription.
	if isNew && s.emailService != nil {
		if err := s.emailService.SendWelcomeEmail(sub.Email, sub.Name); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", sub.Email, err)
		}
	}

	return sub, nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, email string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return false, ErrInvalidEmail
	}
	return s.newsletterRepo.Unsubscribe(ctx, email)
}
