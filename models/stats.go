package models

// PlayerStats represents aggregated statistics for one player, grouped by
// the owning user's username
type PlayerStats struct {
	Username     string
	GamesPlayed  int
	AverageScore float64
	BestScore    int64
}

// ScoreboardData bundles the read-only views the scores page renders.
// It is recomputed from the store on every request.
type ScoreboardData struct {
	AllScores   []*Score
	UserScores  []*Score
	TopScores   []*Score
	PlayerStats []*PlayerStats
}
