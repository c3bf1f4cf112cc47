package service

import (
	"context"
	"fmt"

	"scorekeeper/models"

	"golang.org/x/crypto/bcrypt"
)

// accountService implements the AccountService interface
type accountService struct {
	users UserRepository
}

// NewAccountService creates a new account service
func NewAccountService(users UserRepository) AccountService {
	return &accountService{users: users}
}

// Register validates the registration form and creates the user
func (s *accountService) Register(ctx context.Context, username, password, passwordConfirm string) (*models.User, error) {
	// Validation order matters: the mismatch message wins over the
	// duplicate-username message when both apply.
	if password != passwordConfirm {
		return nil, ErrPasswordMismatch
	}

	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username %q: %w", username, err)
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.users.Create(ctx, username, string(hash))
	if err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", username, err)
	}

	return user, nil
}

// Authenticate verifies a username/password pair
func (s *accountService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}
	if user == nil {
		// Same error for unknown user and bad password
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Delete removes a user account and everything it owns
func (s *accountService) Delete(ctx context.Context, userID int64) error {
	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	return nil
}
