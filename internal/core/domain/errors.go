package domain

import "errors"

var (
	// ErrValidation is wrapped by every field-level validation failure so
	// callers can match the class with errors.Is while keeping the message.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")

	ErrPostNotFound = errors.New("blog not found")
	ErrForbidden    = errors.New("access denied")

	ErrTokenMalformed = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")

	ErrTooManyAttempts = errors.New("too many failed login attempts, try again later")
)
