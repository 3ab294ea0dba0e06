package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/bedjos/storefront/app/models"
	"github.com/bedjos/storefront/app/repositories"
)

type ContactInput struct {
	Name    string `json:"name"    validate:"required,max=120"`
	Email   string `json:"email"   validate:"required,email,max=120"`
	Phone   string `json:"phone"   validate:"nullable,max=20"`
	Message string `json:"message" validate:"required"`
}

// ContactNotifier is told about every stored message. It must not block
// and has no way to fail the submission.
type ContactNotifier interface {
	ContactReceived(ctx context.Context, msg models.ContactMessage)
}

type ContactService struct {
	messages *repositories.ContactRepository
	notifier ContactNotifier
}

// NewContactService builds the service; notifier may be nil.
func NewContactService(db *gorm.DB, notifier ContactNotifier) *ContactService {
	return &ContactService{
		messages: repositories.NewContactRepository(db),
		notifier: notifier,
	}
}

// Submit stores the message, then hands it to the notifier.
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Message: in.Message,
	}
	if err := s.messages.Create(ctx, &msg); err != nil {
		return models.ContactMessage{}, fmt.Errorf("store contact message: %w", err)
	}

	if s.notifier != nil {
		s.notifier.ContactReceived(ctx, msg)
	}
	return msg, nil
}

// List returns every message, newest first.
func (s *ContactService) List(ctx context.Context) ([]models.ContactMessage, error) {
	out, err := s.messages.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	return out, nil
}
