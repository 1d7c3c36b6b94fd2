package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/textdesk/textdesk/internal/config"
)

type sendRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
	Key     string `json:"key"`
}

// vendorResponse is the loosely-typed vendor JSON, confined to this package.
// TextID arrives as a string or a number depending on the deployment.
type vendorResponse struct {
	Success        bool        `json:"success"`
	TextID         json.Number `json:"textId"`
	QuotaRemaining int         `json:"quotaRemaining"`
	Error          string      `json:"error"`
}

type client struct {
	cfg        *config.GatewayConfig
	httpClient *http.Client
	breaker    *CircuitBreaker
	logger     *zap.Logger
}

// NewClient creates a vendor client with the configured timeout and a
// circuit breaker guarding both operations.
func NewClient(cfg *config.GatewayConfig, logger *zap.Logger) Client {
	return &client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
		breaker: NewCircuitBreaker(&cfg.CircuitBreaker, logger),
		logger:  logger,
	}
}

// BreakerState reports the circuit breaker state for health checks.
func (c *client) BreakerState() string {
	return c.breaker.State()
}

func (c *client) Send(ctx context.Context, input SendInput) (*SendResult, error) {
	endpoint := input.Endpoint
	if endpoint == "" {
		endpoint = c.cfg.SendURL
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doSend(ctx, endpoint, input)
	})
	if err != nil {
		return nil, err
	}

	return result.(*SendResult), nil
}

func (c *client) doSend(ctx context.Context, endpoint string, input SendInput) (*SendResult, error) {
	body, err := json.Marshal(sendRequest{
		Phone:   input.Phone,
		Message: input.Message,
		Key:     input.Key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}

	var vendor vendorResponse
	if err := json.NewDecoder(resp.Body).Decode(&vendor); err != nil {
		// Rate-limit and proxy errors arrive as plain text.
		c.logger.Warn("Gateway response was not JSON",
			zap.Int("status", resp.StatusCode),
			zap.Error(err))
		return nil, fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode)
	}

	if !vendor.Success {
		reason := vendor.Error
		if reason == "" {
			reason = "Unknown error from SMS gateway"
		}
		return &SendResult{
			Status: SendStatusRejected,
			Reason: reason,
		}, nil
	}

	return &SendResult{
		Status:         SendStatusDelivered,
		TextID:         vendor.TextID.String(),
		QuotaRemaining: vendor.QuotaRemaining,
	}, nil
}

func (c *client) Quota(ctx context.Context, apiKey, endpoint string) (int, error) {
	base := endpoint
	if base == "" {
		base = c.cfg.QuotaURL
	}
	url := strings.TrimSuffix(base, "/") + "/" + apiKey

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.doQuota(ctx, url)
	})
	if err != nil {
		return 0, err
	}

	return result.(int), nil
}

func (c *client) doQuota(ctx context.Context, url string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create quota request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("Failed to close response body", zap.Error(closeErr))
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return 0, ErrRateLimited
	}

	var vendor vendorResponse
	if err := json.NewDecoder(resp.Body).Decode(&vendor); err != nil {
		return 0, fmt.Errorf("%w: status %d", ErrMalformedResponse, resp.StatusCode)
	}

	if !vendor.Success {
		return 0, fmt.Errorf("%w: vendor reported failure", ErrMalformedResponse)
	}

	return vendor.QuotaRemaining, nil
}
