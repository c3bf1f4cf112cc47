package models

import (
	"time"
)

// User represents a registered player account
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"` // bcrypt hash, never the plaintext password
	CreatedAt    time.Time `db:"created_at"`
}
