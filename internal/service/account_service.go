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

type accountService struct {
	repo    repository.Repository
	gateway gateway.Client
	logger  *zap.Logger
}

func NewAccountService(repo repository.Repository, gatewayClient gateway.Client, logger *zap.Logger) AccountService {
	return &accountService{
		repo:    repo,
		gateway: gatewayClient,
		logger:  logger,
	}
}

// Balance reports the vendor's remaining quota as money at the flat
// per-SMS price.
func (s *accountService) Balance(ctx context.Context) (*models.BalanceReport, error) {
	settings, err := s.repo.Settings().Get(ctx)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	if !settings.HasAPIKey() {
		return nil, ErrNotConfigured
	}

	quota, err := s.gateway.Quota(ctx, *settings.APIKey, quotaEndpointFor(settings.APIEndpoint))
	if err != nil {
		return nil, err
	}

	return &models.BalanceReport{
		Success:        true,
		QuotaRemaining: quota,
		Balance:        fmt.Sprintf("$%.2f", float64(quota)*models.CostPerMessage),
	}, nil
}

// Usage aggregates message history into the account statistics view.
func (s *accountService) Usage(ctx context.Context) (*models.UsageReport, error) {
	messages, err := s.repo.Messages().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	report := &models.UsageReport{
		MessagesSent: len(messages),
	}
	for _, m := range messages {
		switch m.Status {
		case models.MessageStatusDelivered:
			report.MessagesDelivered++
		case models.MessageStatusFailed:
			report.MessagesFailed++
		}
	}

	if report.MessagesSent > 0 {
		report.SuccessRate = int(float64(report.MessagesDelivered)/float64(report.MessagesSent)*100 + 0.5)
	}
	report.TotalSpent = fmt.Sprintf("$%.2f", float64(report.MessagesDelivered)*models.CostPerMessage)

	return report, nil
}
