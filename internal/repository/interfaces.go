package repository

import (
	"context"
	"errors"

	"github.com/textdesk/textdesk/internal/models"
)

// ErrNotFound is returned when the target record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrEmailTaken is returned when a user create collides on the unique email.
var ErrEmailTaken = errors.New("email already registered")

// Repository interface defines all repository operations.
type Repository interface {
	// Ping checks backend connectivity
	Ping() error

	Users() UserRepository
	Contacts() ContactRepository
	Messages() MessageRepository
	Settings() SettingsRepository
}

// UserRepository interface defines user operations. Users are created at
// signup and read at signin; no delete operation is exposed.
type UserRepository interface {
	Create(ctx context.Context, email, passwordHash, fullName string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// ContactRepository interface defines contact operations.
type ContactRepository interface {
	// List returns contacts with favorites first, then ascending by name.
	List(ctx context.Context) ([]*models.Contact, error)
	GetByID(ctx context.Context, id string) (*models.Contact, error)
	GetByPhone(ctx context.Context, phone string) (*models.Contact, error)
	Create(ctx context.Context, input *models.ContactInput) (*models.Contact, error)
	Update(ctx context.Context, id string, update *models.ContactUpdate) (*models.Contact, error)
	Delete(ctx context.Context, id string) error
}

// MessageRepository interface defines message operations. Status is
// write-once-terminal: MarkDelivered and MarkFailed only transition rows
// that are still pending.
type MessageRepository interface {
	// List returns messages ordered by sent time descending.
	List(ctx context.Context) ([]*models.Message, error)
	GetByID(ctx context.Context, id string) (*models.Message, error)
	Create(ctx context.Context, input *models.SendMessageRequest) (*models.Message, error)
	MarkDelivered(ctx context.Context, id, textID string) (*models.Message, error)
	MarkFailed(ctx context.Context, id, errorMessage string) (*models.Message, error)
	Delete(ctx context.Context, id string) error
}

// SettingsRepository interface defines the singleton settings operations.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, settings *models.Settings) (*models.Settings, error)
}
