package models

import (
	"time"
)

// Default labels applied when a submission omits the optional fields.
const (
	DefaultMode       = "standard"
	DefaultPlayerName = "Unknown Player"
)

// Score represents one completed game attempt. Records are immutable after
// insertion and are deleted only when the owning user is deleted.
type Score struct {
	ID         int64     `db:"id"`
	UserID     int64     `db:"user_id"`
	Value      int64     `db:"value"`
	Mode       string    `db:"mode"`
	PlayerName string    `db:"player_name"` // in-game name for this attempt, independent of Username
	Username   string    `db:"-"`           // joined from the owning user on reads
	CreatedAt  time.Time `db:"created_at"`
}
