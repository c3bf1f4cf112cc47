package repository

import (
	"context"
	"fmt"

	"scorekeeper/database"
	"scorekeeper/models"

	"github.com/jackc/pgx/v5"
)

// ScoreRepository implements the service.ScoreRepository interface
type ScoreRepository struct {
	q queryable
}

// NewScoreRepository creates a new score repository
func NewScoreRepository(db *database.DB) *ScoreRepository {
	return &ScoreRepository{q: db.Pool}
}

// Create inserts a new score record, filling ID and CreatedAt
func (r *ScoreRepository) Create(ctx context.Context, score *models.Score) error {
	query := `
		INSERT INTO scores (user_id, value, mode, player_name)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query, score.UserID, score.Value, score.Mode, score.PlayerName).Scan(
		&score.ID,
		&score.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create score for user %d: %w", score.UserID, err)
	}

	return nil
}

// ListAll returns every score, most recent first
func (r *ScoreRepository) ListAll(ctx context.Context) ([]*models.Score, error) {
	query := `
		SELECT s.id, s.user_id, s.value, s.mode, s.player_name, s.created_at, u.username
		FROM scores s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.created_at DESC, s.id DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// ListByUser returns one user's scores, most recent first
func (r *ScoreRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Score, error) {
	query := `
		SELECT s.id, s.user_id, s.value, s.mode, s.player_name, s.created_at, u.username
		FROM scores s
		JOIN users u ON u.id = s.user_id
		WHERE s.user_id = $1
		ORDER BY s.created_at DESC, s.id DESC
	`

	rows, err := r.q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for user %d: %w", userID, err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// TopN returns the highest scores, at most limit rows. Ties on value rank
// the earlier submission first, which keeps the leaderboard order stable.
func (r *ScoreRepository) TopN(ctx context.Context, limit int) ([]*models.Score, error) {
	query := `
		SELECT s.id, s.user_id, s.value, s.mode, s.player_name, s.created_at, u.username
		FROM scores s
		JOIN users u ON u.id = s.user_id
		ORDER BY s.value DESC, s.created_at ASC, s.id ASC
		LIMIT $1
	`

	rows, err := r.q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top %d scores: %w", limit, err)
	}
	defer rows.Close()

	return scanScores(rows)
}

// StatsByPlayer returns per-username aggregates ordered by best score descending
func (r *ScoreRepository) StatsByPlayer(ctx context.Context) ([]*models.PlayerStats, error) {
	query := `
		SELECT u.username, COUNT(*), AVG(s.value)::float8, MAX(s.value)
		FROM scores s
		JOIN users u ON u.id = s.user_id
		GROUP BY u.username
		ORDER BY MAX(s.value) DESC, u.username ASC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}
	defer rows.Close()

	var stats []*models.PlayerStats
	for rows.Next() {
		var entry models.PlayerStats
		if err := rows.Scan(
			&entry.Username,
			&entry.GamesPlayed,
			&entry.AverageScore,
			&entry.BestScore,
		); err != nil {
			return nil, fmt.Errorf("failed to scan player stats: %w", err)
		}
		stats = append(stats, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate player stats: %w", err)
	}

	return stats, nil
}

// scanScores collects score rows that include the joined username
func scanScores(rows pgx.Rows) ([]*models.Score, error) {
	var scores []*models.Score
	for rows.Next() {
		var score models.Score
		if err := rows.Scan(
			&score.ID,
			&score.UserID,
			&score.Value,
			&score.Mode,
			&score.PlayerName,
			&score.CreatedAt,
			&score.Username,
		); err != nil {
			return nil, fmt.Errorf("failed to scan score: %w", err)
		}
		scores = append(scores, &score)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scores: %w", err)
	}

	return scores, nil
}
