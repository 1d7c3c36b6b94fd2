package service

import (
	"context"

	"github.com/textdesk/textdesk/internal/models"
)

type AuthService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.User, error)
}

type ContactService interface {
	List(ctx context.Context) ([]*models.Contact, error)
	Create(ctx context.Context, input *models.ContactInput) (*models.Contact, error)
	Update(ctx context.Context, id string, update *models.ContactUpdate) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

type MessageService interface {
	List(ctx context.Context) ([]*models.Message, error)
	Send(ctx context.Context, req *models.SendMessageRequest) (*models.Message, error)
	Delete(ctx context.Context, id string) error
}

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, update *models.SettingsUpdate) (*models.Settings, error)
	TestConnection(ctx context.Context, req *models.TestConnectionRequest) (int, error)
}

type AccountService interface {
	Balance(ctx context.Context) (*models.BalanceReport, error)
	Usage(ctx context.Context) (*models.UsageReport, error)
}

type HealthService interface {
	GetHealth() *HealthStatus
}
