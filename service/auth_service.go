package service

import (
	"context"
	"errors"
	"fmt"

	"filedrop-backend/models"

	"github.com/sirupsen/logrus"
)

// AuthService handles registration and identity lookup. There is no
// credential: knowing a username is enough to log in as that user.
type AuthService struct {
	userRepo UserRepository
	log      logrus.FieldLogger
}

// AuthServiceOption is a functional option for AuthService
type AuthServiceOption func(*AuthService)

// WithUserRepository sets the user repository
func WithUserRepository(repo UserRepository) AuthServiceOption {
	return func(s *AuthService) {
		s.userRepo = repo
	}
}

// AuthWithLogger sets the logger
func AuthWithLogger(log logrus.FieldLogger) AuthServiceOption {
	return func(s *AuthService) {
		s.log = log
	}
}

// NewAuthService creates a new auth service
func NewAuthService(opts ...AuthServiceOption) *AuthService {
	s := &AuthService{log: discardLogger()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user with the given username
func (s *AuthService) Register(ctx context.Context, username string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user := &models.User{Username: username}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, models.ErrDuplicateUsername) {
			return nil, models.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "username": user.Username}).Info("user registered")
	return user, nil
}

// Login resolves a username to its user
func (s *AuthService) Login(ctx context.Context, username string) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, models.ErrUnknownUser
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	s.log.WithField("user_id", user.ID).Info("user logged in")
	return user, nil
}

// CurrentUser returns the user bound to a session, or nil when the id no
// longer resolves
func (s *AuthService) CurrentUser(ctx context.Context, id int64) (*models.User, error) {
	if s.userRepo == nil {
		return nil, errors.New("user repository not set")
	}
	if id <= 0 {
		return nil, nil
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
