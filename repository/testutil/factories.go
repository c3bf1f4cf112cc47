package testutil

import (
	"scorekeeper/models"
)

// CreateTestScore creates a score model with default labels
func CreateTestScore(userID int64, value int64) *models.Score {
	return &models.Score{
		UserID:     userID,
		Value:      value,
		Mode:       models.DefaultMode,
		PlayerName: models.DefaultPlayerName,
	}
}

// CreateTestScoreWithLabels creates a score model with specific mode and player name
func CreateTestScoreWithLabels(userID int64, value int64, mode, playerName string) *models.Score {
	score := CreateTestScore(userID, value)
	score.Mode = mode
	score.PlayerName = playerName
	return score
}
