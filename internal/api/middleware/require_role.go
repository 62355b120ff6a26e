package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/blog-platform/blog-api/internal/core/domain"
)

// RequireRole restricts a route to actors carrying one of the allowed roles.
// Must run after Auth.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, _ := c.Get(ActorKey).(*domain.User)
			if actor == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "no token provided, authorization denied")
			}
			if _, ok := allowed[actor.Role]; !ok {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
