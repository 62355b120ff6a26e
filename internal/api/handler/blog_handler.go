package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blog-platform/blog-api/internal/api/metrics"
	"github.com/blog-platform/blog-api/internal/core/domain"
	"github.com/blog-platform/blog-api/internal/core/ports"
)

// BlogHandler wires the post use cases to the HTTP surface. Reads are
// public; mutations require the Auth middleware and delegate the
// owner-or-admin decision to the service.
type BlogHandler struct {
	posts ports.PostService
}

func NewBlogHandler(posts ports.PostService) *BlogHandler {
	return &BlogHandler{posts: posts}
}

// List handles GET /blogs with optional search and category filters.
//
// @Summary      List blog posts
// @Tags         blogs
// @Produce      json
// @Param        search    query  string  false  "Substring matched against title, description, and category"
// @Param        category  query  string  false  "Exact category; 'All' means no filter"
// @Success      200  {object}  envelope
// @Router       /blogs [get]
func (h *BlogHandler) List(c echo.Context) error {
	filter := ports.PostFilter{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
	}

	posts, err := h.posts.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Count:   countOf(len(posts)),
		Data:    toBlogListResponse(posts),
	})
}

// Get handles GET /blogs/:id.
//
// @Summary      Get a blog post
// @Tags         blogs
// @Produce      json
// @Param        id  path  string  true  "Blog id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /blogs/{id} [get]
func (h *BlogHandler) Get(c echo.Context) error {
	post, err := h.posts.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Data: toBlogResponse(post)})
}

// Create handles POST /blogs. The author is always the authenticated actor.
//
// @Summary      Create a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBlogRequest  true  "Blog fields"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /blogs [post]
func (h *BlogHandler) Create(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	var req createBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	post, err := h.posts.Create(c.Request().Context(), user, toCreateInput(req))
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.WithLabelValues(string(post.Category)).Inc()
	return c.JSON(http.StatusCreated, envelope{
		Success: true,
		Message: "Blog created successfully",
		Data:    toBlogResponse(post),
	})
}

// Update handles PUT /blogs/:id, owner or admin only.
//
// @Summary      Update a blog post
// @Tags         blogs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Blog id"
// @Param        body  body      updateBlogRequest  true  "Fields to change"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /blogs/{id} [put]
func (h *BlogHandler) Update(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	var req updateBlogRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return fmt.Errorf("%w: %s", domain.ErrValidation, err.Error())
	}

	post, err := h.posts.Update(c.Request().Context(), user, c.Param("id"), toUpdateInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Message: "Blog updated successfully",
		Data:    toBlogResponse(post),
	})
}

// Delete handles DELETE /blogs/:id, owner or admin only.
//
// @Summary      Delete a blog post
// @Tags         blogs
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Blog id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /blogs/{id} [delete]
func (h *BlogHandler) Delete(c echo.Context) error {
	user, err := actor(c)
	if err != nil {
		return err
	}

	if err := h.posts.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}

	by := "owner"
	if user.IsAdmin() {
		by = "admin"
	}
	metrics.PostsDeletedTotal.WithLabelValues(by).Inc()

	return c.JSON(http.StatusOK, envelope{Success: true, Message: "Blog deleted successfully"})
}

// ListByUser handles GET /blogs/user/:userId. Public, no auth required.
//
// @Summary      List posts by author
// @Tags         blogs
// @Produce      json
// @Param        userId  path  string  true  "Author user id"
// @Success      200  {object}  envelope
// @Router       /blogs/user/{userId} [get]
func (h *BlogHandler) ListByUser(c echo.Context) error {
	posts, err := h.posts.ListByAuthor(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Count:   countOf(len(posts)),
		Data:    toBlogListResponse(posts),
	})
}

// Categories handles GET /blogs/categories/list, every category in use.
//
// @Summary      List categories in use
// @Tags         blogs
// @Produce      json
// @Success      200  {object}  envelope
// @Router       /blogs/categories/list [get]
func (h *BlogHandler) Categories(c echo.Context) error {
	categories, err := h.posts.Categories(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Data: categories})
}
