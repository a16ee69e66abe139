package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/domain"
)

// RBAC restricts a route to users whose session role is in roles. It reads
// the user injected by Session, so it must run after it; a request without
// a session user is forbidden outright.
func RBAC(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get("user").(domain.User)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden"})
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"message": "forbidden"})
		}
	}
}
