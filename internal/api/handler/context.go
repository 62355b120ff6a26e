package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blog-platform/blog-api/internal/api/middleware"
	"github.com/blog-platform/blog-api/internal/core/domain"
)

// actor extracts the authenticated user injected by the Auth middleware.
// A missing actor on a protected route means the middleware did not run;
// reject rather than proceed unauthenticated.
func actor(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.ActorKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "no token provided, authorization denied")
	}
	return user, nil
}
