package services

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

// ContactRepo defines the storage operations for the contact inbox.
type ContactRepo interface {
	Add(ctx context.Context, contact *models.Contact) error
	FindAll(ctx context.Context) ([]models.Contact, error)
}

// ContactService handles the public contact form and the admin inbox view.
type ContactService struct {
	contacts ContactRepo
	authz    Authorizer
	logger   zerolog.Logger
}

func NewContactService(contacts ContactRepo, authz Authorizer) *ContactService {
	return &ContactService{
		contacts: contacts,
		authz:    authz,
		logger:   log.With().Str("serviceName", "contactService").Logger(),
	}
}

// Submit appends a message to the inbox. No deduplication, no rate limiting.
func (svc *ContactService) Submit(ctx context.Context, name, email, message string) (*models.Contact, error) {
	if name == "" {
		return nil, errs.NewMissingRequiredFieldError("name")
	}
	if email == "" {
		return nil, errs.NewMissingRequiredFieldError("email")
	}
	if message == "" {
		return nil, errs.NewMissingRequiredFieldError("message")
	}

	contact := &models.Contact{Name: name, Email: email, Message: message}
	if err := svc.contacts.Add(ctx, contact); err != nil {
		return nil, errs.NewDatabaseError("create", "contact", err)
	}

	svc.logger.Info().Str("email", email).Msg("contact message received")
	return contact, nil
}

// ListAll returns the whole inbox, newest first. Admin only.
func (svc *ContactService) ListAll(ctx context.Context, userID uint) ([]models.Contact, error) {
	admin, err := svc.authz.IsAdmin(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !admin {
		return nil, errs.NewForbidden("admin access required")
	}

	contacts, err := svc.contacts.FindAll(ctx)
	if err != nil {
		return nil, errs.NewDatabaseError("find", "contacts", err)
	}
	return contacts, nil
}
