package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/textdesk/textdesk/internal/gateway"
	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
)

type settingsService struct {
	repo    repository.Repository
	gateway gateway.Client
	logger  *zap.Logger
}

func NewSettingsService(repo repository.Repository, gatewayClient gateway.Client, logger *zap.Logger) SettingsService {
	return &settingsService{
		repo:    repo,
		gateway: gatewayClient,
		logger:  logger,
	}
}

// Get returns the stored settings, or the documented defaults when no
// record exists yet. Reading never creates a record.
func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repo.Settings().Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return settings, nil
}

// Update merges the partial payload onto the current record (or the
// defaults) and writes the result through the single-row upsert, so
// repeating the same payload is idempotent.
func (s *settingsService) Update(ctx context.Context, update *models.SettingsUpdate) (*models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	update.Apply(current)

	saved, err := s.repo.Settings().Upsert(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Info("Settings updated", zap.Bool("apiKeyConfigured", saved.HasAPIKey()))

	return saved, nil
}

// TestConnection validates an API key by asking the vendor for its
// remaining quota. Nothing is persisted.
func (s *settingsService) TestConnection(ctx context.Context, req *models.TestConnectionRequest) (int, error) {
	quota, err := s.gateway.Quota(ctx, req.APIKey, quotaEndpointFor(req.APIEndpoint))
	if err != nil {
		return 0, err
	}

	return quota, nil
}

// quotaEndpointFor derives the vendor quota URL from a custom send
// endpoint. An empty send endpoint defers to the configured default.
func quotaEndpointFor(sendEndpoint string) string {
	if sendEndpoint == "" {
		return ""
	}
	return strings.TrimSuffix(strings.TrimSuffix(sendEndpoint, "/text"), "/") + "/quota"
}
