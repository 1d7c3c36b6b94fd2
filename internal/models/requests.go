package models

import (
	"fmt"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidationError carries field-level detail for a rejected payload.
type ValidationError struct {
	Fields map[string]string `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

type fieldErrors map[string]string

func (f fieldErrors) err() error {
	if len(f) == 0 {
		return nil
	}
	return &ValidationError{Fields: f}
}

// SignUpRequest is the payload for POST /api/auth/signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

func (r *SignUpRequest) Validate() error {
	errs := fieldErrors{}
	if !emailPattern.MatchString(r.Email) {
		errs["email"] = "must be a valid email address"
	}
	if len(r.Password) < MinPasswordLength {
		errs["password"] = fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	}
	if strings.TrimSpace(r.FullName) == "" {
		errs["fullName"] = "is required"
	}
	return errs.err()
}

// SignInRequest is the payload for POST /api/auth/signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SignInRequest) Validate() error {
	errs := fieldErrors{}
	if !emailPattern.MatchString(r.Email) {
		errs["email"] = "must be a valid email address"
	}
	if r.Password == "" {
		errs["password"] = "is required"
	}
	return errs.err()
}

// ContactInput is the payload for creating a contact.
type ContactInput struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsFavorite *bool  `json:"isFavorite,omitempty"`
}

func (r *ContactInput) Validate() error {
	errs := fieldErrors{}
	if strings.TrimSpace(r.Name) == "" {
		errs["name"] = "is required"
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs["phone"] = "is required"
	}
	return errs.err()
}

// ContactUpdate is a partial contact payload; nil fields are left unchanged.
type ContactUpdate struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	IsFavorite *bool   `json:"isFavorite,omitempty"`
}

func (r *ContactUpdate) Validate() error {
	errs := fieldErrors{}
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		errs["name"] = "must not be empty"
	}
	if r.Phone != nil && strings.TrimSpace(*r.Phone) == "" {
		errs["phone"] = "must not be empty"
	}
	return errs.err()
}

// SendMessageRequest is the payload for POST /api/messages/send.
type SendMessageRequest struct {
	RecipientPhone string  `json:"recipientPhone"`
	RecipientName  *string `json:"recipientName,omitempty"`
	Content        string  `json:"content"`
}

func (r *SendMessageRequest) Validate() error {
	errs := fieldErrors{}
	if strings.TrimSpace(r.RecipientPhone) == "" {
		errs["recipientPhone"] = "is required"
	}
	if r.Content == "" {
		errs["content"] = "is required"
	} else if len(r.Content) > MaxContentLength {
		errs["content"] = fmt.Sprintf("must be at most %d characters", MaxContentLength)
	}
	return errs.err()
}

// SettingsUpdate is a partial settings payload; nil fields are left unchanged.
type SettingsUpdate struct {
	APIKey               *string `json:"apiKey,omitempty"`
	Token                *string `json:"token,omitempty"`
	APIEndpoint          *string `json:"apiEndpoint,omitempty"`
	DefaultCountryCode   *string `json:"defaultCountryCode,omitempty"`
	AutoSaveDrafts       *bool   `json:"autoSaveDrafts,omitempty"`
	MessageConfirmations *bool   `json:"messageConfirmations,omitempty"`
}

func (r *SettingsUpdate) Validate() error {
	errs := fieldErrors{}
	if r.APIEndpoint != nil && *r.APIEndpoint != "" && !strings.HasPrefix(*r.APIEndpoint, "http") {
		errs["apiEndpoint"] = "must be an http(s) URL"
	}
	return errs.err()
}

// Apply merges the partial update onto an existing settings record.
func (r *SettingsUpdate) Apply(s *Settings) {
	if r.APIKey != nil {
		s.APIKey = r.APIKey
	}
	if r.Token != nil {
		s.Token = r.Token
	}
	if r.APIEndpoint != nil {
		s.APIEndpoint = *r.APIEndpoint
	}
	if r.DefaultCountryCode != nil {
		s.DefaultCountryCode = *r.DefaultCountryCode
	}
	if r.AutoSaveDrafts != nil {
		s.AutoSaveDrafts = *r.AutoSaveDrafts
	}
	if r.MessageConfirmations != nil {
		s.MessageConfirmations = *r.MessageConfirmations
	}
}

// TestConnectionRequest is the payload for POST /api/settings/test.
type TestConnectionRequest struct {
	APIKey      string `json:"apiKey"`
	APIEndpoint string `json:"apiEndpoint,omitempty"`
}

func (r *TestConnectionRequest) Validate() error {
	errs := fieldErrors{}
	if strings.TrimSpace(r.APIKey) == "" {
		errs["apiKey"] = "is required"
	}
	return errs.err()
}
