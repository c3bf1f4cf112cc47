package service

import (
	"errors"
)

// Validation errors surfaced to the user. Anything else returned by a
// service is treated as an internal failure and never shown to the client.
var (
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrMissingScore       = errors.New("score is required")
)

// IsValidationError reports whether err is a user-caused validation error
// rather than an internal failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrPasswordMismatch) ||
		errors.Is(err, ErrUsernameTaken) ||
		errors.Is(err, ErrInvalidCredentials) ||
		errors.Is(err, ErrMissingScore)
}
