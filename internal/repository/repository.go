// Package repository provides PostgreSQL-backed persistence for the
// application entities. An in-memory implementation of the same contract
// lives in the memory subpackage.
package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
)

// repositoryImpl is the concrete implementation of Repository interface.
type repositoryImpl struct {
	db       *sqlx.DB
	users    UserRepository
	contacts ContactRepository
	messages MessageRepository
	settings SettingsRepository
}

// NewRepository creates a new repository instance.
func NewRepository(db *sqlx.DB) Repository {
	return &repositoryImpl{
		db:       db,
		users:    NewUserRepository(db),
		contacts: NewContactRepository(db),
		messages: NewMessageRepository(db),
		settings: NewSettingsRepository(db),
	}
}

func (r *repositoryImpl) Users() UserRepository {
	return r.users
}

func (r *repositoryImpl) Contacts() ContactRepository {
	return r.contacts
}

func (r *repositoryImpl) Messages() MessageRepository {
	return r.messages
}

func (r *repositoryImpl) Settings() SettingsRepository {
	return r.settings
}

// Ping checks if the database connection is healthy.
func (r *repositoryImpl) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return r.db.PingContext(ctx)
}
