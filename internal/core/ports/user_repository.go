package ports

import (
	"context"

	"github.com/blog-platform/blog-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user accounts.
type UserRepository interface {
	// Create persists a new user. Duplicate username/email surfaces as
	// domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByID resolves a user by identifier; domain.ErrUserNotFound on miss.
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByLogin resolves a user whose username OR email equals login.
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
	// Count returns the total number of registered users.
	Count(ctx context.Context) (int64, error)
}
