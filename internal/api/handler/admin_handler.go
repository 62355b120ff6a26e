package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blog-platform/blog-api/internal/core/ports"
)

// AdminHandler serves the moderation dashboard figures. Routes using it are
// wired behind Auth plus RequireRole(admin).
type AdminHandler struct {
	users ports.UserRepository
	posts ports.PostRepository
}

func NewAdminHandler(users ports.UserRepository, posts ports.PostRepository) *AdminHandler {
	return &AdminHandler{users: users, posts: posts}
}

type adminStats struct {
	Users int64 `json:"users"`
	Blogs int64 `json:"blogs"`
}

// Stats handles GET /admin/stats.
//
// @Summary      Platform totals for the admin dashboard
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	userCount, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	postCount, err := h.posts.Count(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    adminStats{Users: userCount, Blogs: postCount},
	})
}
