package ports

import (
	"context"

	"github.com/blog-platform/blog-api/internal/core/domain"
)

// PostFilter narrows a post listing. Search is a case-insensitive substring
// matched against title, description, and category (logical OR); Category is
// an exact match. Both combine with logical AND; empty fields are ignored.
type PostFilter struct {
	Search   string
	Category string
}

// PostUpdate carries a partial update. Nil pointers leave the field
// untouched. Image is tri-state: ImageSet false keeps the current image,
// ImageSet true with a nil Image removes it, non-nil replaces it.
type PostUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Image       *string
	ImageSet    bool
}

// PostRepository defines the persistence interface for posts. The store
// trusts its caller: authorization is decided before any call lands here.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// FindByID resolves a post; domain.ErrPostNotFound on miss.
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	// Update applies the supplied fields only and refreshes updated_at.
	// ID, author, author_name, and created_at are never altered.
	Update(ctx context.Context, id string, update PostUpdate) (*domain.Post, error)
	// Delete physically removes the post; a second call on the same id
	// returns domain.ErrPostNotFound.
	Delete(ctx context.Context, id string) error
	// List returns posts matching filter, newest-created first.
	List(ctx context.Context, filter PostFilter) ([]domain.Post, error)
	// ListByAuthor returns the author's posts, newest-created first.
	ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error)
	// DistinctCategories returns every category present on at least one
	// post, deduplicated, in ascending lexicographic order.
	DistinctCategories(ctx context.Context) ([]string, error)
	// Count returns the total number of stored posts.
	Count(ctx context.Context) (int64, error)
}
