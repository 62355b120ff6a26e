package ports

import (
	"context"

	"github.com/blog-platform/blog-api/internal/core/domain"
)

// AuthService implements registration and login use cases.
type AuthService interface {
	// Register creates a user with the default role and returns it together
	// with a freshly issued bearer token.
	Register(ctx context.Context, username, email, password string) (*domain.User, string, error)
	// Login authenticates by username or email and returns the user and a
	// bearer token.
	Login(ctx context.Context, login, password string) (*domain.User, string, error)
}

// LoginLimiter throttles repeated failed login attempts per login name.
type LoginLimiter interface {
	TooMany(ctx context.Context, login string) (bool, error)
	RecordFailure(ctx context.Context, login string) error
	Reset(ctx context.Context, login string) error
}
