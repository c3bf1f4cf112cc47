package service

import (
	"context"
	"fmt"
	"time"

	"scorekeeper/models"

	"github.com/google/uuid"
)

// sessionService implements the SessionService interface
type sessionService struct {
	sessions SessionRepository
	users    UserRepository
	ttl      time.Duration
}

// NewSessionService creates a new session service
func NewSessionService(sessions SessionRepository, users UserRepository, ttl time.Duration) SessionService {
	return &sessionService{
		sessions: sessions,
		users:    users,
		ttl:      ttl,
	}
}

// Start creates a new session for the user
func (s *sessionService) Start(ctx context.Context, userID int64) (*models.Session, error) {
	now := time.Now().UTC()
	session := &models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session for user %d: %w", userID, err)
	}

	return session, nil
}

// CurrentUser resolves a session token to its user
func (s *sessionService) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	if session.Expired(time.Now().UTC()) {
		// Lazy cleanup; an expired session is indistinguishable from a missing one
		if err := s.sessions.Delete(ctx, sessionID); err != nil {
			return nil, fmt.Errorf("failed to delete expired session: %w", err)
		}
		return nil, nil
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session user %d: %w", session.UserID, err)
	}

	return user, nil
}

// End destroys a session
func (s *sessionService) End(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
