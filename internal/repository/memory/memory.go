// Package memory provides an in-memory implementation of the repository
// contract, used for single-process deployments and in tests. Unlike the
// original single-threaded deployment model, Go handlers run concurrently,
// so all maps are guarded by a mutex.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
)

type store struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	contacts map[string]*models.Contact
	messages map[string]*models.Message
	settings *models.Settings
}

type repositoryImpl struct {
	s *store
}

// NewRepository creates an empty in-memory repository.
func NewRepository() repository.Repository {
	return &repositoryImpl{
		s: &store{
			users:    make(map[string]*models.User),
			contacts: make(map[string]*models.Contact),
			messages: make(map[string]*models.Message),
		},
	}
}

func (r *repositoryImpl) Ping() error { return nil }

func (r *repositoryImpl) Users() repository.UserRepository        { return (*userRepo)(r) }
func (r *repositoryImpl) Contacts() repository.ContactRepository  { return (*contactRepo)(r) }
func (r *repositoryImpl) Messages() repository.MessageRepository  { return (*messageRepo)(r) }
func (r *repositoryImpl) Settings() repository.SettingsRepository { return (*settingsRepo)(r) }

type userRepo repositoryImpl

func (r *userRepo) Create(_ context.Context, email, passwordHash, fullName string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return nil, repository.ErrEmailTaken
		}
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     fullName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.s.users[user.ID] = user

	copied := *user
	return &copied, nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

type contactRepo repositoryImpl

func (r *contactRepo) List(_ context.Context) ([]*models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	contacts := make([]*models.Contact, 0, len(r.s.contacts))
	for _, c := range r.s.contacts {
		copied := *c
		contacts = append(contacts, &copied)
	}

	sort.Slice(contacts, func(i, j int) bool {
		if contacts[i].IsFavorite != contacts[j].IsFavorite {
			return contacts[i].IsFavorite
		}
		return contacts[i].Name < contacts[j].Name
	})

	return contacts, nil
}

func (r *contactRepo) GetByID(_ context.Context, id string) (*models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	contact, ok := r.s.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *contact
	return &copied, nil
}

func (r *contactRepo) GetByPhone(_ context.Context, phone string) (*models.Contact, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, contact := range r.s.contacts {
		if contact.Phone == phone {
			copied := *contact
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *contactRepo) Create(_ context.Context, input *models.ContactInput) (*models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	isFavorite := false
	if input.IsFavorite != nil {
		isFavorite = *input.IsFavorite
	}

	contact := &models.Contact{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Phone:      input.Phone,
		IsFavorite: isFavorite,
		CreatedAt:  time.Now(),
	}
	r.s.contacts[contact.ID] = contact

	copied := *contact
	return &copied, nil
}

func (r *contactRepo) Update(_ context.Context, id string, update *models.ContactUpdate) (*models.Contact, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	contact, ok := r.s.contacts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	if update.Name != nil {
		contact.Name = *update.Name
	}
	if update.Phone != nil {
		contact.Phone = *update.Phone
	}
	if update.IsFavorite != nil {
		contact.IsFavorite = *update.IsFavorite
	}

	copied := *contact
	return &copied, nil
}

func (r *contactRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.contacts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.contacts, id)
	return nil
}

type messageRepo repositoryImpl

func (r *messageRepo) List(_ context.Context) ([]*models.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	messages := make([]*models.Message, 0, len(r.s.messages))
	for _, m := range r.s.messages {
		copied := *m
		messages = append(messages, &copied)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].SentAt.After(messages[j].SentAt)
	})

	return messages, nil
}

func (r *messageRepo) GetByID(_ context.Context, id string) (*models.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	message, ok := r.s.messages[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *message
	return &copied, nil
}

func (r *messageRepo) Create(_ context.Context, input *models.SendMessageRequest) (*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	message := &models.Message{
		ID:             uuid.New().String(),
		RecipientPhone: input.RecipientPhone,
		RecipientName:  input.RecipientName,
		Content:        input.Content,
		Status:         models.MessageStatusPending,
		SentAt:         time.Now(),
		Cost:           models.DefaultMessageCost,
	}
	r.s.messages[message.ID] = message

	copied := *message
	return &copied, nil
}

func (r *messageRepo) MarkDelivered(_ context.Context, id, textID string) (*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	message, ok := r.s.messages[id]
	if !ok || message.Status != models.MessageStatusPending {
		return nil, repository.ErrNotFound
	}

	message.Status = models.MessageStatusDelivered
	message.TextID = &textID

	copied := *message
	return &copied, nil
}

func (r *messageRepo) MarkFailed(_ context.Context, id, errorMessage string) (*models.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	message, ok := r.s.messages[id]
	if !ok || message.Status != models.MessageStatusPending {
		return nil, repository.ErrNotFound
	}

	message.Status = models.MessageStatusFailed
	message.ErrorMessage = &errorMessage

	copied := *message
	return &copied, nil
}

func (r *messageRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.messages[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.s.messages, id)
	return nil
}

type settingsRepo repositoryImpl

func (r *settingsRepo) Get(_ context.Context) (*models.Settings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if r.s.settings == nil {
		return nil, repository.ErrNotFound
	}
	copied := *r.s.settings
	return &copied, nil
}

func (r *settingsRepo) Upsert(_ context.Context, settings *models.Settings) (*models.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	copied := *settings
	if copied.ID == "" {
		if r.s.settings != nil {
			copied.ID = r.s.settings.ID
		} else {
			copied.ID = uuid.New().String()
		}
	}
	r.s.settings = &copied

	result := copied
	return &result, nil
}
