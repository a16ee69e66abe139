package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/ports"
)

// SessionCookieName must match the cookie issued at login.
const SessionCookieName = "session"

// Session validates the encrypted session cookie and injects the
// authenticated user into context. Missing, expired, undecryptable, or
// revoked cookies all fail with 401.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing session")
			}

			session, err := auth.Verify(c.Request().Context(), cookie.Value)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
			}

			c.Set("user", session.User)
			c.Set("role", session.User.Role)
			c.Set("sid", session.SID)

			return next(c)
		}
	}
}
