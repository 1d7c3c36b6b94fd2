package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/textdesk/textdesk/internal/gateway"
	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
)

// networkErrorMessage is the error text recorded on a message when the
// vendor could not be reached; raw transport detail stays in the logs.
const networkErrorMessage = "Network error communicating with SMS gateway"

type messageService struct {
	repo    repository.Repository
	gateway gateway.Client
	logger  *zap.Logger
}

func NewMessageService(repo repository.Repository, gatewayClient gateway.Client, logger *zap.Logger) MessageService {
	return &messageService{
		repo:    repo,
		gateway: gatewayClient,
		logger:  logger,
	}
}

func (s *messageService) List(ctx context.Context) ([]*models.Message, error) {
	messages, err := s.repo.Messages().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

// Send runs the three-step send flow: persist a pending record, call the
// vendor once, move the record to its terminal state. There is no retry;
// a resend from the client creates an entirely new record.
func (s *messageService) Send(ctx context.Context, req *models.SendMessageRequest) (*models.Message, error) {
	settings, err := s.repo.Settings().Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.HasAPIKey() {
		// No record is created for an unconfigured gateway.
		return nil, ErrNotConfigured
	}

	message, err := s.repo.Messages().Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	result, err := s.gateway.Send(ctx, gateway.SendInput{
		Phone:    req.RecipientPhone,
		Message:  req.Content,
		Key:      *settings.APIKey,
		Endpoint: settings.SendEndpoint(),
	})
	if err != nil {
		s.logger.Error("Gateway unreachable",
			zap.String("messageID", message.ID),
			zap.Error(err))

		failed := s.markFailed(ctx, message, networkErrorMessage)
		return nil, &SendFailedError{Message: failed, Err: err}
	}

	if result.Status == gateway.SendStatusRejected {
		s.logger.Warn("Gateway rejected message",
			zap.String("messageID", message.ID),
			zap.String("reason", result.Reason))

		failed := s.markFailed(ctx, message, result.Reason)
		return nil, &SendRejectedError{Message: failed, Reason: result.Reason}
	}

	delivered, err := s.repo.Messages().MarkDelivered(ctx, message.ID, result.TextID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark message delivered: %w", err)
	}

	s.logger.Info("Message delivered",
		zap.String("messageID", delivered.ID),
		zap.String("textID", result.TextID),
		zap.Int("quotaRemaining", result.QuotaRemaining))

	return delivered, nil
}

// markFailed records the terminal failed state; a storage error here is
// logged and the in-memory copy returned so the response still carries
// the outcome.
func (s *messageService) markFailed(ctx context.Context, message *models.Message, reason string) *models.Message {
	failed, err := s.repo.Messages().MarkFailed(ctx, message.ID, reason)
	if err != nil {
		s.logger.Error("Failed to record message failure",
			zap.String("messageID", message.ID),
			zap.Error(err))
		message.Status = models.MessageStatusFailed
		message.ErrorMessage = &reason
		return message
	}

	return failed
}

func (s *messageService) Delete(ctx context.Context, id string) error {
	return s.repo.Messages().Delete(ctx, id)
}
