package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/blog-platform/blog-api/internal/core/domain"
	"github.com/blog-platform/blog-api/internal/core/ports"
)

// filterAll is the sentinel category the original UI sends for "no filter".
const filterAll = "All"

// PostService implements post use cases: validation, the owner-or-admin
// policy on mutations, and author stamping on create.
type PostService struct {
	repo   ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, logger: logger}
}

// Create persists a post authored by actor. The author reference and name
// snapshot always come from the actor, never from the input.
func (s *PostService) Create(ctx context.Context, actor *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	category, err := resolveCategory(input.Category)
	if err != nil {
		return nil, err
	}
	if err := validateImage(input.Image); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		Title:       title,
		Description: description,
		Category:    category,
		AuthorID:    actor.ID,
		AuthorName:  actor.Username,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Str("author", actor.ID).Msg("failed to create blog")
		return nil, err
	}

	s.logger.Info().Str("blog_id", created.ID).Str("author", actor.ID).Str("category", string(created.Category)).Msg("blog created")
	return created, nil
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.repo.FindByID(ctx, id)
}

// Update edits the supplied fields of a post after the policy check.
// Author, author name, and creation time survive any input.
func (s *PostService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanUpdate(actor, existing.AuthorID) {
		return nil, domain.ErrForbidden
	}

	update := ports.PostUpdate{Image: input.Image, ImageSet: input.ImageSet}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if err := validateTitle(title); err != nil {
			return nil, err
		}
		update.Title = &title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if err := validateDescription(description); err != nil {
			return nil, err
		}
		update.Description = &description
	}
	if input.Category != nil {
		category, err := resolveCategory(*input.Category)
		if err != nil {
			return nil, err
		}
		cat := string(category)
		update.Category = &cat
	}
	if input.ImageSet {
		if err := validateImage(input.Image); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("blog_id", id).Str("actor", actor.ID).Msg("blog updated")
	return updated, nil
}

// Delete physically removes a post after the policy check.
func (s *PostService) Delete(ctx context.Context, actor *domain.User, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDelete(actor, existing.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Str("blog_id", id).Str("actor", actor.ID).Msg("blog deleted")
	return nil
}

func (s *PostService) List(ctx context.Context, filter ports.PostFilter) ([]domain.Post, error) {
	if filter.Category == filterAll {
		filter.Category = ""
	}
	return s.repo.List(ctx, filter)
}

func (s *PostService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.repo.ListByAuthor(ctx, authorID)
}

func (s *PostService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < domain.TitleMinLen {
		return fmt.Errorf("%w: title must be at least %d characters long", domain.ErrValidation, domain.TitleMinLen)
	}
	if n > domain.TitleMaxLen {
		return fmt.Errorf("%w: title cannot exceed %d characters", domain.ErrValidation, domain.TitleMaxLen)
	}
	return nil
}

func validateDescription(description string) error {
	if utf8.RuneCountInString(description) < domain.DescriptionMinLen {
		return fmt.Errorf("%w: description must be at least %d characters long", domain.ErrValidation, domain.DescriptionMinLen)
	}
	return nil
}

func resolveCategory(raw string) (domain.Category, error) {
	if raw == "" {
		return domain.CategoryGeneral, nil
	}
	category := domain.Category(raw)
	if !category.Valid() {
		return "", fmt.Errorf("%w: unknown category %q", domain.ErrValidation, raw)
	}
	return category, nil
}

func validateImage(image *string) error {
	if image != nil && len(*image) > domain.MaxImageBytes {
		return fmt.Errorf("%w: image is too large, please use a smaller image", domain.ErrValidation)
	}
	return nil
}
