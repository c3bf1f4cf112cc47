package service

import (
	"context"

	"scorekeeper/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user with the given username and password hash
	Create(ctx context.Context, username, passwordHash string) (*models.User, error)

	// GetByID retrieves a user by ID, nil if not found
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByUsername retrieves a user by username, nil if not found
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// Delete removes a user; owned sessions and scores are removed by cascade
	Delete(ctx context.Context, id int64) error
}

// SessionRepository defines the interface for session data access
type SessionRepository interface {
	// Create persists a new session row
	Create(ctx context.Context, session *models.Session) error

	// Get retrieves a session by its token, nil if not found
	Get(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session by its token
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions past their expiry, returning the count
	DeleteExpired(ctx context.Context) (int64, error)
}

// ScoreRepository defines the interface for score data access
type ScoreRepository interface {
	// Create inserts a new score record, filling ID and CreatedAt
	Create(ctx context.Context, score *models.Score) error

	// ListAll returns every score, most recent first
	ListAll(ctx context.Context) ([]*models.Score, error)

	// ListByUser returns one user's scores, most recent first
	ListByUser(ctx context.Context, userID int64) ([]*models.Score, error)

	// TopN returns the highest scores, value descending, at most limit rows.
	// Equal values rank the earlier submission first.
	TopN(ctx context.Context, limit int) ([]*models.Score, error)

	// StatsByPlayer returns per-username aggregates ordered by best score descending
	StatsByPlayer(ctx context.Context) ([]*models.PlayerStats, error)
}

// AccountService manages user registration and credential checks
type AccountService interface {
	// Register validates the registration form and creates the user.
	// Returns ErrPasswordMismatch or ErrUsernameTaken on rejection.
	Register(ctx context.Context, username, password, passwordConfirm string) (*models.User, error)

	// Authenticate verifies a username/password pair.
	// Returns ErrInvalidCredentials when either is wrong.
	Authenticate(ctx context.Context, username, password string) (*models.User, error)

	// Delete removes a user account and, by cascade, everything it owns
	Delete(ctx context.Context, userID int64) error
}

// SessionService manages login sessions
type SessionService interface {
	// Start creates a new session for the user
	Start(ctx context.Context, userID int64) (*models.Session, error)

	// CurrentUser resolves a session token to its user.
	// Returns nil for unknown or expired sessions.
	CurrentUser(ctx context.Context, sessionID string) (*models.User, error)

	// End destroys a session
	End(ctx context.Context, sessionID string) error
}

// ScoreService manages score submission and the scoreboard views
type ScoreService interface {
	// Submit records one completed game for the owner.
	// Returns ErrMissingScore when value is nil; mode and playerName fall
	// back to their defaults when empty.
	Submit(ctx context.Context, ownerID int64, value *int64, mode, playerName string) (*models.Score, error)

	// Scoreboard assembles the full/user/top/stats bundle for the given user
	Scoreboard(ctx context.Context, userID int64) (*models.ScoreboardData, error)
}
