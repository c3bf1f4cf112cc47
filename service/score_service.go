package service

import (
	"context"
	"fmt"

	"scorekeeper/models"
)

// LeaderboardSize is the number of entries shown on the top-scores table
const LeaderboardSize = 10

// scoreService implements the ScoreService interface
type scoreService struct {
	scores ScoreRepository
}

// NewScoreService creates a new score service
func NewScoreService(scores ScoreRepository) ScoreService {
	return &scoreService{scores: scores}
}

// Submit records one completed game for the owner
func (s *scoreService) Submit(ctx context.Context, ownerID int64, value *int64, mode, playerName string) (*models.Score, error) {
	if value == nil {
		return nil, ErrMissingScore
	}

	if mode == "" {
		mode = models.DefaultMode
	}
	if playerName == "" {
		playerName = models.DefaultPlayerName
	}

	score := &models.Score{
		UserID:     ownerID,
		Value:      *value,
		Mode:       mode,
		PlayerName: playerName,
	}

	if err := s.scores.Create(ctx, score); err != nil {
		return nil, fmt.Errorf("failed to save score for user %d: %w", ownerID, err)
	}

	return score, nil
}

// Scoreboard assembles the full/user/top/stats bundle for the given user.
// The four views are independent reads over the current store; nothing is
// cached between requests.
func (s *scoreService) Scoreboard(ctx context.Context, userID int64) (*models.ScoreboardData, error) {
	all, err := s.scores.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores: %w", err)
	}

	mine, err := s.scores.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scores for user %d: %w", userID, err)
	}

	top, err := s.scores.TopN(ctx, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get top scores: %w", err)
	}

	stats, err := s.scores.StatsByPlayer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get player stats: %w", err)
	}

	return &models.ScoreboardData{
		AllScores:   all,
		UserScores:  mine,
		TopScores:   top,
		PlayerStats: stats,
	}, nil
}
