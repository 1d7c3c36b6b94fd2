package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/textdesk/textdesk/internal/gateway"
	"github.com/textdesk/textdesk/internal/gateway/mocks"
	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/service"
)

func TestSettingsService_Get_Defaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newMemoryRepo()
	settingsService := service.NewSettingsService(repo, mocks.NewMockClient(ctrl), zap.NewNop())

	settings, err := settingsService.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, models.DefaultSendEndpoint, settings.APIEndpoint)
	assert.Equal(t, models.DefaultCountryCode, settings.DefaultCountryCode)
	assert.True(t, settings.AutoSaveDrafts)
	assert.False(t, settings.MessageConfirmations)
	assert.False(t, settings.HasAPIKey())

	// Reading settings never creates a record; defaults are computed.
	settings2, err := settingsService.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, settings2.ID)
}

func TestSettingsService_Update_PartialMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newMemoryRepo()
	settingsService := service.NewSettingsService(repo, mocks.NewMockClient(ctrl), zap.NewNop())

	apiKey := "key-123"
	saved, err := settingsService.Update(context.Background(), &models.SettingsUpdate{
		APIKey: &apiKey,
	})
	require.NoError(t, err)

	// Unspecified fields keep their defaults.
	assert.True(t, saved.HasAPIKey())
	assert.Equal(t, models.DefaultSendEndpoint, saved.APIEndpoint)
	assert.Equal(t, models.DefaultCountryCode, saved.DefaultCountryCode)

	countryCode := "+44"
	updated, err := settingsService.Update(context.Background(), &models.SettingsUpdate{
		DefaultCountryCode: &countryCode,
	})
	require.NoError(t, err)

	// The earlier key survives a later partial update.
	assert.True(t, updated.HasAPIKey())
	assert.Equal(t, "+44", updated.DefaultCountryCode)
}

func TestSettingsService_Update_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newMemoryRepo()
	settingsService := service.NewSettingsService(repo, mocks.NewMockClient(ctrl), zap.NewNop())

	apiKey := "key-123"
	update := &models.SettingsUpdate{APIKey: &apiKey}

	first, err := settingsService.Update(context.Background(), update)
	require.NoError(t, err)

	second, err := settingsService.Update(context.Background(), update)
	require.NoError(t, err)

	// Repeating the same payload touches the same single row.
	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.Settings().Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first.ID, stored.ID)
}

func TestSettingsService_TestConnection(t *testing.T) {
	tests := []struct {
		name          string
		req           *models.TestConnectionRequest
		setupMock     func(mockGateway *mocks.MockClient)
		expectedQuota int
		expectErr     bool
	}{
		{
			name: "valid key",
			req:  &models.TestConnectionRequest{APIKey: "key-123"},
			setupMock: func(mockGateway *mocks.MockClient) {
				mockGateway.EXPECT().
					Quota(gomock.Any(), "key-123", "").
					Return(120, nil)
			},
			expectedQuota: 120,
		},
		{
			name: "custom endpoint maps to its quota URL",
			req: &models.TestConnectionRequest{
				APIKey:      "key-123",
				APIEndpoint: "https://sms.example.com/text",
			},
			setupMock: func(mockGateway *mocks.MockClient) {
				mockGateway.EXPECT().
					Quota(gomock.Any(), "key-123", "https://sms.example.com/quota").
					Return(10, nil)
			},
			expectedQuota: 10,
		},
		{
			name: "gateway failure",
			req:  &models.TestConnectionRequest{APIKey: "bad-key"},
			setupMock: func(mockGateway *mocks.MockClient) {
				mockGateway.EXPECT().
					Quota(gomock.Any(), "bad-key", "").
					Return(0, gateway.ErrUnreachable)
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockGateway := mocks.NewMockClient(ctrl)
			tt.setupMock(mockGateway)

			settingsService := service.NewSettingsService(newMemoryRepo(), mockGateway, zap.NewNop())

			quota, err := settingsService.TestConnection(context.Background(), tt.req)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expectedQuota, quota)
		})
	}
}
