package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
	"github.com/textdesk/textdesk/internal/repository/memory"
)

func TestUserRepository_CreateAndLookup(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Users().Create(ctx, "alice@example.com", "hash", "Alice Doe")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	byID, err := repo.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", byID.Email)

	byEmail, err := repo.Users().GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	_, err = repo.Users().GetByEmail(ctx, "bob@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	_, err := repo.Users().Create(ctx, "alice@example.com", "hash", "Alice Doe")
	require.NoError(t, err)

	_, err = repo.Users().Create(ctx, "alice@example.com", "hash2", "Alice Again")
	assert.ErrorIs(t, err, repository.ErrEmailTaken)
}

func TestContactRepository_ListOrdering(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	favorite := true
	for _, c := range []*models.ContactInput{
		{Name: "Zoe", Phone: "+15550000001"},
		{Name: "Amy", Phone: "+15550000002", IsFavorite: &favorite},
		{Name: "Bob", Phone: "+15550000003"},
		{Name: "Cleo", Phone: "+15550000004", IsFavorite: &favorite},
	} {
		_, err := repo.Contacts().Create(ctx, c)
		require.NoError(t, err)
	}

	contacts, err := repo.Contacts().List(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 4)

	// Favorites first, then ascending by name.
	names := make([]string, len(contacts))
	for i, c := range contacts {
		names[i] = c.Name
	}
	assert.Equal(t, []string{"Amy", "Cleo", "Bob", "Zoe"}, names)
}

func TestContactRepository_Update(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Contacts().Create(ctx, &models.ContactInput{
		Name:  "Bob",
		Phone: "+15550000003",
	})
	require.NoError(t, err)

	favorite := true
	updated, err := repo.Contacts().Update(ctx, created.ID, &models.ContactUpdate{
		IsFavorite: &favorite,
	})
	require.NoError(t, err)

	// Untouched fields survive a partial update.
	assert.Equal(t, "Bob", updated.Name)
	assert.Equal(t, "+15550000003", updated.Phone)
	assert.True(t, updated.IsFavorite)

	_, err = repo.Contacts().Update(ctx, "missing-id", &models.ContactUpdate{IsFavorite: &favorite})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactRepository_GetByPhone(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Contacts().Create(ctx, &models.ContactInput{
		Name:  "Bob",
		Phone: "+15550000003",
	})
	require.NoError(t, err)

	found, err := repo.Contacts().GetByPhone(ctx, "+15550000003")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = repo.Contacts().GetByPhone(ctx, "+15559999999")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestContactRepository_Delete(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Contacts().Create(ctx, &models.ContactInput{
		Name:  "Bob",
		Phone: "+15550000003",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Contacts().Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Contacts().Delete(ctx, created.ID), repository.ErrNotFound)
}

func TestMessageRepository_CreateDefaults(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	name := "Bob"
	created, err := repo.Messages().Create(ctx, &models.SendMessageRequest{
		RecipientPhone: "+15551234567",
		RecipientName:  &name,
		Content:        "hello",
	})
	require.NoError(t, err)

	assert.Equal(t, models.MessageStatusPending, created.Status)
	assert.Equal(t, models.DefaultMessageCost, created.Cost)
	assert.WithinDuration(t, time.Now(), created.SentAt, time.Second)
	assert.Nil(t, created.TextID)
	assert.Nil(t, created.ErrorMessage)
}

func TestMessageRepository_ListNewestFirst(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	var ids []string
	for _, content := range []string{"first", "second", "third"} {
		m, err := repo.Messages().Create(ctx, &models.SendMessageRequest{
			RecipientPhone: "+15551234567",
			Content:        content,
		})
		require.NoError(t, err)
		ids = append(ids, m.ID)
		time.Sleep(time.Millisecond)
	}

	messages, err := repo.Messages().List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, ids[2], messages[0].ID)
	assert.Equal(t, ids[0], messages[2].ID)
}

func TestMessageRepository_TerminalStatusIsWriteOnce(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Messages().Create(ctx, &models.SendMessageRequest{
		RecipientPhone: "+15551234567",
		Content:        "hello",
	})
	require.NoError(t, err)

	delivered, err := repo.Messages().MarkDelivered(ctx, created.ID, "777")
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusDelivered, delivered.Status)
	require.NotNil(t, delivered.TextID)
	assert.Equal(t, "777", *delivered.TextID)

	// A terminal record cannot be transitioned again.
	_, err = repo.Messages().MarkFailed(ctx, created.ID, "late failure")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = repo.Messages().MarkDelivered(ctx, created.ID, "888")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	stored, err := repo.Messages().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusDelivered, stored.Status)
}

func TestMessageRepository_MarkFailed(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Messages().Create(ctx, &models.SendMessageRequest{
		RecipientPhone: "+15551234567",
		Content:        "hello",
	})
	require.NoError(t, err)

	failed, err := repo.Messages().MarkFailed(ctx, created.ID, "Out of quota")
	require.NoError(t, err)
	assert.Equal(t, models.MessageStatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	assert.Equal(t, "Out of quota", *failed.ErrorMessage)
}

func TestMessageRepository_Delete(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Messages().Create(ctx, &models.SendMessageRequest{
		RecipientPhone: "+15551234567",
		Content:        "hello",
	})
	require.NoError(t, err)

	require.NoError(t, repo.Messages().Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Messages().Delete(ctx, created.ID), repository.ErrNotFound)
}

func TestSettingsRepository_Upsert(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	_, err := repo.Settings().Get(ctx)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	apiKey := "key-123"
	first, err := repo.Settings().Upsert(ctx, &models.Settings{
		APIKey:             &apiKey,
		APIEndpoint:        models.DefaultSendEndpoint,
		DefaultCountryCode: models.DefaultCountryCode,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	// A later upsert rewrites the same single row.
	countryCode := "+44"
	second, err := repo.Settings().Upsert(ctx, &models.Settings{
		APIKey:             &apiKey,
		APIEndpoint:        models.DefaultSendEndpoint,
		DefaultCountryCode: countryCode,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	stored, err := repo.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "+44", stored.DefaultCountryCode)
}

func TestRepository_ReturnsCopies(t *testing.T) {
	repo := memory.NewRepository()
	ctx := context.Background()

	created, err := repo.Contacts().Create(ctx, &models.ContactInput{
		Name:  "Bob",
		Phone: "+15550000003",
	})
	require.NoError(t, err)

	created.Name = "Mutated"

	stored, err := repo.Contacts().GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", stored.Name)
}
