package handler

import (
	"github.com/blog-platform/blog-api/internal/core/domain"
	"github.com/blog-platform/blog-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createBlogRequest) ports.CreatePostInput {
	return ports.CreatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
	}
}

func toUpdateInput(req updateBlogRequest) ports.UpdatePostInput {
	return ports.UpdatePostInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		ImageSet:    req.imageProvided,
	}
}

// --- Domain → HTTP response ---

func toBlogResponse(p *domain.Post) blogResponse {
	return blogResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    string(p.Category),
		Author:      p.AuthorID,
		AuthorName:  p.AuthorName,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toBlogListResponse(posts []domain.Post) []blogResponse {
	out := make([]blogResponse, len(posts))
	for i := range posts {
		out[i] = toBlogResponse(&posts[i])
	}
	return out
}
