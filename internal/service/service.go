// Package service provides business logic implementation for the application.
package service

import (
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/textdesk/textdesk/internal/gateway"
	"github.com/textdesk/textdesk/internal/repository"
)

type Service struct {
	Auth     AuthService
	Contact  ContactService
	Message  MessageService
	Settings SettingsService
	Account  AccountService
	Health   HealthService
}

func NewService(
	repo repository.Repository,
	gatewayClient gateway.Client,
	redisClient *redis.Client,
	logger *zap.Logger,
) *Service {
	settingsService := NewSettingsService(repo, gatewayClient, logger)

	return &Service{
		Auth:     NewAuthService(repo, logger),
		Contact:  NewContactService(repo, logger),
		Message:  NewMessageService(repo, gatewayClient, logger),
		Settings: settingsService,
		Account:  NewAccountService(repo, gatewayClient, logger),
		Health:   NewHealthService(repo, redisClient, gatewayClient),
	}
}
