package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/textdesk/textdesk/internal/models"
	"github.com/textdesk/textdesk/internal/repository"
)

type authService struct {
	repo   repository.Repository
	logger *zap.Logger
}

func NewAuthService(repo repository.Repository, logger *zap.Logger) AuthService {
	return &authService{
		repo:   repo,
		logger: logger,
	}
}

// SignUp creates a new account. The password is bcrypt-hashed before it
// reaches storage; the plaintext is never persisted.
func (s *authService) SignUp(ctx context.Context, req *models.SignUpRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.repo.Users().Create(ctx, req.Email, string(hash), req.FullName)
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			s.logger.Warn("Signup with duplicate email", zap.String("email", req.Email))
			return nil, repository.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", zap.String("userID", user.ID))

	return user, nil
}

// SignIn verifies credentials. Unknown emails and wrong passwords both
// surface as ErrInvalidCredentials.
func (s *authService) SignIn(ctx context.Context, req *models.SignInRequest) (*models.User, error) {
	user, err := s.repo.Users().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Signin with invalid password", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
