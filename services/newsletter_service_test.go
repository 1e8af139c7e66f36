package services

import (
	"context"
	"testing"

	"shophub/models"

	"github.com/stretchr/testify/assert"
)

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	svc := NewNewsletterService(nil, nil)

	for _, email := range []string{"", "not-an-email", "missing@domain@twice"} {
		_, err := svc.Subscribe(context.Background(), &models.SubscribeRequest{Email: email})
		assert.ErrorIs(t, err, ErrInvalidEmail, "email %q", email)
	}
}

func TestUnsubscribeRejectsInvalidEmail(t *testing.T) {
	svc := NewNewsletterService(nil, nil)

	_, err := svc.Unsubscribe(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}
