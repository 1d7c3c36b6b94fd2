package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
)

type contactService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewContactService(repo repository.Repository, logger *zap.Logger) ContactService {
	return &contactService{
		repo:   repo,
		logger: logger,
	}
}

func (s *contactService) List(ctx context.Context) ([]*models.Contact, error) {
	contacts, err := s.repo.Contacts().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

func (s *contactService) Create(ctx context.Context, input *models.ContactInput) (*models.Contact, error) {
	contact, err := s.repo.Contacts().Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	s.logger.Info("Contact created", zap.String("contactID", contact.ID))

	return contact, nil
}

func (s *contactService) Update(ctx context.Context, id string, update *models.ContactUpdate) (*models.Contact, error) {
	contact, err := s.repo.Contacts().Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	return contact, nil
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	return s.repo.Contacts().Delete(ctx, id)
}
