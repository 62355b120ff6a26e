package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/blog-platform/blog-api/internal/api/middleware"
	"github.com/blog-platform/blog-api/internal/core/domain"
	"github.com/blog-platform/blog-api/internal/core/ports"
)

type stubPostService struct {
	createFn       func(ctx context.Context, actor *domain.User, input ports.CreatePostInput) (*domain.Post, error)
	getFn          func(ctx context.Context, id string) (*domain.Post, error)
	updateFn       func(ctx context.Context, actor *domain.User, id string, input ports.UpdatePostInput) (*domain.Post, error)
	deleteFn       func(ctx context.Context, actor *domain.User, id string) error
	listFn         func(ctx context.Context, filter ports.PostFilter) ([]domain.Post, error)
	listByAuthorFn func(ctx context.Context, authorID string) ([]domain.Post, error)
	categoriesFn   func(ctx context.Context) ([]string, error)
}

func (s *stubPostService) Create(ctx context.Context, actor *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubPostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.getFn(ctx, id)
}

func (s *stubPostService) Update(ctx context.Context, actor *domain.User, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	return s.updateFn(ctx, actor, id, input)
}

func (s *stubPostService) Delete(ctx context.Context, actor *domain.User, id string) error {
	return s.deleteFn(ctx, actor, id)
}

func (s *stubPostService) List(ctx context.Context, filter ports.PostFilter) ([]domain.Post, error) {
	return s.listFn(ctx, filter)
}

func (s *stubPostService) ListByAuthor(ctx context.Context, authorID string) ([]domain.Post, error) {
	return s.listByAuthorFn(ctx, authorID)
}

func (s *stubPostService) Categories(ctx context.Context) ([]string, error) {
	return s.categoriesFn(ctx)
}

func samplePost(id string) *domain.Post {
	return &domain.Post{
		ID:          id,
		Title:       "Hello World",
		Description: "This is a sufficiently long body.",
		Category:    domain.CategoryTechnology,
		AuthorID:    "u1",
		AuthorName:  "alice",
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func withActor(c echo.Context, user *domain.User) echo.Context {
	c.Set(middleware.ActorKey, user)
	return c
}

func TestBlogHandler_List(t *testing.T) {
	e := newEcho()
	var gotFilter ports.PostFilter
	stub := &stubPostService{
		listFn: func(ctx context.Context, filter ports.PostFilter) ([]domain.Post, error) {
			gotFilter = filter
			return []domain.Post{*samplePost("p1"), *samplePost("p2")}, nil
		},
	}
	h := NewBlogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/blogs?search=hello&category=Technology", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotFilter.Search != "hello" || gotFilter.Category != "Technology" {
		t.Fatalf("query params not forwarded: %+v", gotFilter)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["count"] != float64(2) {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	data, _ := resp["data"].([]any)
	if len(data) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(data))
	}
	first, _ := data[0].(map[string]any)
	if first["title"] != "Hello World" || first["author"] != "u1" || first["author_name"] != "alice" {
		t.Fatalf("unexpected post payload: %+v", first)
	}
}

func TestBlogHandler_Get_NotFound(t *testing.T) {
	e := newEcho()
	stub := &stubPostService{
		getFn: func(ctx context.Context, id string) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewBlogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/blogs/missing", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/blogs/:id")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	if err := h.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestBlogHandler_Create_Success(t *testing.T) {
	e := newEcho()
	author := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleUser}
	stub := &stubPostService{
		createFn: func(ctx context.Context, actor *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
			if actor != author {
				t.Fatalf("actor not forwarded")
			}
			if input.Title != "Hello World" || input.Category != "Technology" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return samplePost("p1"), nil
		},
	}
	h := NewBlogHandler(stub)

	c, rec := jsonContext(e, http.MethodPost, "/blogs",
		`{"title":"Hello World","description":"This is a sufficiently long body.","category":"Technology"}`)
	withActor(c, author)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Blog created successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestBlogHandler_Create_NoActor(t *testing.T) {
	e := newEcho()
	h := NewBlogHandler(&stubPostService{})

	c, _ := jsonContext(e, http.MethodPost, "/blogs",
		`{"title":"Hello World","description":"This is a sufficiently long body."}`)

	he, ok := h.Create(c).(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", he)
	}
}

func TestBlogHandler_Create_ShortTitle(t *testing.T) {
	e := newEcho()
	h := NewBlogHandler(&stubPostService{
		createFn: func(ctx context.Context, actor *domain.User, input ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := jsonContext(e, http.MethodPost, "/blogs",
		`{"title":"Hi","description":"This is a sufficiently long body."}`)
	withActor(c, &domain.User{ID: "u1", Role: domain.RoleUser})

	if err := h.Create(c); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestBlogHandler_Update_ImageTristate(t *testing.T) {
	e := newEcho()
	author := &domain.User{ID: "u1", Role: domain.RoleUser}

	cases := []struct {
		name      string
		body      string
		wantSet   bool
		wantImage *string
	}{
		{"omitted keeps image", `{"title":"New Title"}`, false, nil},
		{"null clears image", `{"image":null}`, true, nil},
		{"value replaces image", `{"image":"data:image/png;base64,aGk="}`, true, strPtr("data:image/png;base64,aGk=")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got ports.UpdatePostInput
			stub := &stubPostService{
				updateFn: func(ctx context.Context, actor *domain.User, id string, input ports.UpdatePostInput) (*domain.Post, error) {
					got = input
					return samplePost(id), nil
				},
			}
			h := NewBlogHandler(stub)

			c, _ := jsonContext(e, http.MethodPut, "/blogs/p1", tc.body)
			c.SetPath("/blogs/:id")
			c.SetParamNames("id")
			c.SetParamValues("p1")
			withActor(c, author)

			if err := h.Update(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if got.ImageSet != tc.wantSet {
				t.Fatalf("ImageSet = %v, want %v", got.ImageSet, tc.wantSet)
			}
			if (got.Image == nil) != (tc.wantImage == nil) {
				t.Fatalf("Image = %v, want %v", got.Image, tc.wantImage)
			}
			if got.Image != nil && *got.Image != *tc.wantImage {
				t.Fatalf("Image = %q, want %q", *got.Image, *tc.wantImage)
			}
		})
	}
}

func TestBlogHandler_Update_Forbidden(t *testing.T) {
	e := newEcho()
	stub := &stubPostService{
		updateFn: func(ctx context.Context, actor *domain.User, id string, input ports.UpdatePostInput) (*domain.Post, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewBlogHandler(stub)

	c, _ := jsonContext(e, http.MethodPut, "/blogs/p1", `{"title":"New Title"}`)
	c.SetPath("/blogs/:id")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	withActor(c, &domain.User{ID: "u2", Role: domain.RoleUser})

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestBlogHandler_Delete_Success(t *testing.T) {
	e := newEcho()
	var deletedID string
	stub := &stubPostService{
		deleteFn: func(ctx context.Context, actor *domain.User, id string) error {
			deletedID = id
			return nil
		},
	}
	h := NewBlogHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/blogs/p1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/blogs/:id")
	c.SetParamNames("id")
	c.SetParamValues("p1")
	withActor(c, &domain.User{ID: "u1", Role: domain.RoleUser})

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if deletedID != "p1" {
		t.Fatalf("expected delete of p1, got %q", deletedID)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] != "Blog deleted successfully" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestBlogHandler_ListByUser(t *testing.T) {
	e := newEcho()
	stub := &stubPostService{
		listByAuthorFn: func(ctx context.Context, authorID string) ([]domain.Post, error) {
			if authorID != "u1" {
				t.Fatalf("unexpected author id %q", authorID)
			}
			return []domain.Post{*samplePost("p1")}, nil
		},
	}
	h := NewBlogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/blogs/user/u1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/blogs/user/:userId")
	c.SetParamNames("userId")
	c.SetParamValues("u1")

	if err := h.ListByUser(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["count"] != float64(1) {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestBlogHandler_Categories(t *testing.T) {
	e := newEcho()
	stub := &stubPostService{
		categoriesFn: func(ctx context.Context) ([]string, error) {
			return []string{"Food", "Technology"}, nil
		},
	}
	h := NewBlogHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/blogs/categories/list", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Categories(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	data, _ := resp["data"].([]any)
	if len(data) != 2 || data[0] != "Food" {
		t.Fatalf("unexpected categories: %+v", data)
	}
}

func strPtr(s string) *string { return &s }
