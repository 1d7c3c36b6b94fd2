package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/textdesk/textdesk/internal/models"
)

type settingsRepository struct {
	db *sqlx.DB
}

func NewSettingsRepository(db *sqlx.DB) SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// Get returns the singleton settings row, or ErrNotFound when none exists.
func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT id, api_key, token, api_endpoint, default_country_code, auto_save_drafts, message_confirmations
		FROM settings
		LIMIT 1
	`

	var settings models.Settings
	err := r.db.GetContext(ctx, &settings, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return &settings, nil
}

// Upsert writes the full settings record through the single-row uniqueness
// constraint, so concurrent writers cannot produce duplicate rows.
func (r *settingsRepository) Upsert(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	query := `
		INSERT INTO settings (id, singleton, api_key, token, api_endpoint, default_country_code, auto_save_drafts, message_confirmations)
		VALUES ($1, TRUE, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (singleton) DO UPDATE SET
			api_key = EXCLUDED.api_key,
			token = EXCLUDED.token,
			api_endpoint = EXCLUDED.api_endpoint,
			default_country_code = EXCLUDED.default_country_code,
			auto_save_drafts = EXCLUDED.auto_save_drafts,
			message_confirmations = EXCLUDED.message_confirmations
		RETURNING id, api_key, token, api_endpoint, default_country_code, auto_save_drafts, message_confirmations
	`

	id := settings.ID
	if id == "" {
		id = uuid.New().String()
	}

	var saved models.Settings
	err := r.db.GetContext(ctx, &saved, query,
		id,
		settings.APIKey,
		settings.Token,
		settings.APIEndpoint,
		settings.DefaultCountryCode,
		settings.AutoSaveDrafts,
		settings.MessageConfirmations,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert settings: %w", err)
	}

	return &saved, nil
}
