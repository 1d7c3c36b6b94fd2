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

type contactRepository struct {
	db *sqlx.DB
}

func NewContactRepository(db *sqlx.DB) ContactRepository {
	return &contactRepository{
		db: db,
	}
}

// List retrieves all contacts, favorites first, then ascending by name.
func (r *contactRepository) List(ctx context.Context) ([]*models.Contact, error) {
	query := `
		SELECT id, name, phone, is_favorite, created_at
		FROM contacts
		ORDER BY is_favorite DESC, name ASC
	`

	contacts := []*models.Contact{}
	err := r.db.SelectContext(ctx, &contacts, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id string) (*models.Contact, error) {
	query := `
		SELECT id, name, phone, is_favorite, created_at
		FROM contacts
		WHERE id = $1
	`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	return &contact, nil
}

func (r *contactRepository) GetByPhone(ctx context.Context, phone string) (*models.Contact, error) {
	query := `
		SELECT id, name, phone, is_favorite, created_at
		FROM contacts
		WHERE phone = $1
		LIMIT 1
	`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contact by phone: %w", err)
	}

	return &contact, nil
}

// Create inserts a new contact with a generated id and defaulted favorite flag.
func (r *contactRepository) Create(ctx context.Context, input *models.ContactInput) (*models.Contact, error) {
	query := `
		INSERT INTO contacts (id, name, phone, is_favorite, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, phone, is_favorite, created_at
	`

	isFavorite := false
	if input.IsFavorite != nil {
		isFavorite = *input.IsFavorite
	}

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, uuid.New().String(), input.Name, input.Phone, isFavorite, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}

	return &contact, nil
}

// Update merges the partial field set onto the existing record.
func (r *contactRepository) Update(ctx context.Context, id string, update *models.ContactUpdate) (*models.Contact, error) {
	query := `
		UPDATE contacts
		SET name = COALESCE($2, name),
		    phone = COALESCE($3, phone),
		    is_favorite = COALESCE($4, is_favorite)
		WHERE id = $1
		RETURNING id, name, phone, is_favorite, created_at
	`

	var contact models.Contact
	err := r.db.GetContext(ctx, &contact, query, id, update.Name, update.Phone, update.IsFavorite)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}

	return &contact, nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
