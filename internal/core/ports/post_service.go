package ports

import (
	"context"

	"github.com/blog-platform/blog-api/internal/core/domain"
)

// CreatePostInput carries the client-supplied fields of a new post. Author
// fields are never part of the input: they are stamped from the actor.
type CreatePostInput struct {
	Title       string
	Description string
	Category    string
	Image       *string
}

// UpdatePostInput carries a partial edit. Nil pointers mean "unchanged";
// ImageSet distinguishes an omitted image from an explicit null.
type UpdatePostInput struct {
	Title       *string
	Description *string
	Category    *string
	Image       *string
	ImageSet    bool
}

// PostService defines the post use cases. Mutations enforce the
// owner-or-admin policy before touching the repository.
type PostService interface {
	Create(ctx context.Context, actor *domain.User, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, actor *domain.User, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor *domain.User, id string) error
	List(ctx context.Context, filter PostFilter) ([]domain.Post, error)
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	Categories(ctx context.Context) ([]string, error)
}
