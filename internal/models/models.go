// Package models defines data structures used throughout the application.
package models

import "time"

type MessageStatus string

const (
	MessageStatusPending   MessageStatus = "pending"
	MessageStatusDelivered MessageStatus = "delivered"
	MessageStatusFailed    MessageStatus = "failed"
)

const (
	// DefaultSendEndpoint is the vendor's public SMS endpoint used when no
	// custom endpoint is configured.
	DefaultSendEndpoint = "https://textbelt.com/text"

	DefaultCountryCode = "+1"

	// DefaultMessageCost is the per-SMS price in USD, stored as a decimal string.
	DefaultMessageCost = "0.04"

	CostPerMessage = 0.04

	MaxContentLength = 1600

	MinPasswordLength = 8
)

// User represents an account holder.
type User struct {
	ID           string    `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"fullName"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// UserSummary is the view of a user returned by the auth endpoints.
type UserSummary struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func (u *User) Summary() *UserSummary {
	return &UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
	}
}

// Contact represents an address-book entry.
type Contact struct {
	ID         string    `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	Phone      string    `db:"phone" json:"phone"`
	IsFavorite bool      `db:"is_favorite" json:"isFavorite"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}

// Message represents one send attempt. A message is created pending and is
// moved exactly once to delivered or failed; resending creates a new record.
type Message struct {
	ID             string        `db:"id" json:"id"`
	RecipientPhone string        `db:"recipient_phone" json:"recipientPhone"`
	RecipientName  *string       `db:"recipient_name" json:"recipientName,omitempty"`
	Content        string        `db:"content" json:"content"`
	Status         MessageStatus `db:"status" json:"status"`
	SentAt         time.Time     `db:"sent_at" json:"sentAt"`
	Cost           string        `db:"cost" json:"cost"`
	TextID         *string       `db:"textbelt_id" json:"textbeltId,omitempty"`
	ErrorMessage   *string       `db:"error_message" json:"errorMessage,omitempty"`
}

// Settings is the single global configuration record.
type Settings struct {
	ID                   string  `db:"id" json:"id"`
	APIKey               *string `db:"api_key" json:"apiKey"`
	Token                *string `db:"token" json:"token,omitempty"`
	APIEndpoint          string  `db:"api_endpoint" json:"apiEndpoint"`
	DefaultCountryCode   string  `db:"default_country_code" json:"defaultCountryCode"`
	AutoSaveDrafts       bool    `db:"auto_save_drafts" json:"autoSaveDrafts"`
	MessageConfirmations bool    `db:"message_confirmations" json:"messageConfirmations"`
}

// DefaultSettings returns the documented defaults used by read paths when
// no settings record exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		APIEndpoint:          DefaultSendEndpoint,
		DefaultCountryCode:   DefaultCountryCode,
		AutoSaveDrafts:       true,
		MessageConfirmations: false,
	}
}

// HasAPIKey reports whether a usable vendor API key is configured.
func (s *Settings) HasAPIKey() bool {
	return s != nil && s.APIKey != nil && *s.APIKey != ""
}

// SendEndpoint returns the configured send endpoint or the vendor default.
func (s *Settings) SendEndpoint() string {
	if s == nil || s.APIEndpoint == "" {
		return DefaultSendEndpoint
	}
	return s.APIEndpoint
}

// UsageReport aggregates message history statistics for the account view.
type UsageReport struct {
	MessagesSent      int    `json:"messagesSent"`
	MessagesDelivered int    `json:"messagesDelivered"`
	MessagesFailed    int    `json:"messagesFailed"`
	SuccessRate       int    `json:"successRate"`
	TotalSpent        string `json:"totalSpent"`
}

// BalanceReport is the remaining vendor quota expressed as money.
type BalanceReport struct {
	Success        bool   `json:"success"`
	QuotaRemaining int    `json:"quotaRemaining"`
	Balance        string `json:"balance"`
}
