package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/textdesk/textdesk/internal/models"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// List retrieves all messages ordered by sent time descending.
func (r *messageRepository) List(ctx context.Context) ([]*models.Message, error) {
	query := `
		SELECT id, recipient_phone, recipient_name, content, status, sent_at, cost, textbelt_id, error_message
		FROM messages
		ORDER BY sent_at DESC
	`

	messages := []*models.Message{}
	err := r.db.SelectContext(ctx, &messages, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return messages, nil
}

func (r *messageRepository) GetByID(ctx context.Context, id string) (*models.Message, error) {
	query := `
		SELECT id, recipient_phone, recipient_name, content, status, sent_at, cost, textbelt_id, error_message
		FROM messages
		WHERE id = $1
	`

	var message models.Message
	err := r.db.GetContext(ctx, &message, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	return &message, nil
}

// Create inserts a new message in the pending state with the default cost.
func (r *messageRepository) Create(ctx context.Context, input *models.SendMessageRequest) (*models.Message, error) {
	query := `
		INSERT INTO messages (id, recipient_phone, recipient_name, content, status, sent_at, cost)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, recipient_phone, recipient_name, content, status, sent_at, cost, textbelt_id, error_message
	`

	var message models.Message
	err := r.db.GetContext(ctx, &message, query,
		uuid.New().String(),
		input.RecipientPhone,
		input.RecipientName,
		input.Content,
		models.MessageStatusPending,
		time.Now(),
		models.DefaultMessageCost,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return &message, nil
}

// MarkDelivered transitions a pending message to delivered, attaching the
// vendor message id. Rows already in a terminal state are never touched.
func (r *messageRepository) MarkDelivered(ctx context.Context, id, textID string) (*models.Message, error) {
	query := `
		UPDATE messages
		SET status = $2, textbelt_id = $3
		WHERE id = $1 AND status = $4
		RETURNING id, recipient_phone, recipient_name, content, status, sent_at, cost, textbelt_id, error_message
	`

	var message models.Message
	err := r.db.GetContext(ctx, &message, query, id, models.MessageStatusDelivered, textID, models.MessageStatusPending)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark message delivered: %w", err)
	}

	return &message, nil
}

// MarkFailed transitions a pending message to failed, attaching error text.
func (r *messageRepository) MarkFailed(ctx context.Context, id, errorMessage string) (*models.Message, error) {
	query := `
		UPDATE messages
		SET status = $2, error_message = $3
		WHERE id = $1 AND status = $4
		RETURNING id, recipient_phone, recipient_name, content, status, sent_at, cost, textbelt_id, error_message
	`

	var message models.Message
	err := r.db.GetContext(ctx, &message, query, id, models.MessageStatusFailed, errorMessage, models.MessageStatusPending)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark message failed: %w", err)
	}

	return &message, nil
}

func (r *messageRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
