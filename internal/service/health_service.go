package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/textdesk/textdesk/internal/gateway"
	"github.com/textdesk/textdesk/internal/repository"
)

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusDegraded  = "degraded"
	HealthStatusUnhealthy = "unhealthy"

	componentConnected    = "connected"
	componentDisconnected = "disconnected"
)

type HealthStatus struct {
	Status              string `json:"status"`
	StorageStatus       string `json:"storage_status"`
	SessionStoreStatus  string `json:"session_store_status,omitempty"`
	GatewayBreakerState string `json:"gateway_breaker_state"`
}

type healthService struct {
	repo        repository.Repository
	redisClient *redis.Client
	gateway     gateway.Client
}

// NewHealthService creates the health reporter. redisClient is nil when
// sessions are stored in memory.
func NewHealthService(repo repository.Repository, redisClient *redis.Client, gatewayClient gateway.Client) HealthService {
	return &healthService{
		repo:        repo,
		redisClient: redisClient,
		gateway:     gatewayClient,
	}
}

func (s *healthService) GetHealth() *HealthStatus {
	status := &HealthStatus{
		Status: HealthStatusHealthy,
	}

	status.StorageStatus = componentConnected
	if err := s.repo.Ping(); err != nil {
		status.StorageStatus = componentDisconnected
		status.Status = HealthStatusUnhealthy
	}

	if s.redisClient != nil {
		status.SessionStoreStatus = s.checkRedisHealth()
		if status.SessionStoreStatus != componentConnected {
			status.Status = HealthStatusUnhealthy
		}
	}

	status.GatewayBreakerState = s.gateway.BreakerState()
	if status.GatewayBreakerState == "open" && status.Status == HealthStatusHealthy {
		// The service still answers requests while the vendor is down.
		status.Status = HealthStatusDegraded
	}

	return status
}

func (s *healthService) checkRedisHealth() string {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.redisClient.Ping(ctx).Err(); err != nil {
		return componentDisconnected
	}

	return componentConnected
}
