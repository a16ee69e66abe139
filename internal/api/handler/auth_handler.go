package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// SessionCookieName is the cookie carrying the encrypted session payload.
const SessionCookieName = "session"

// AuthHandler handles login, logout, and the password reveal read-path.
type AuthHandler struct {
	auth ports.AuthService
	// secureCookies toggles the cookie's Secure attribute; enabled only in
	// production-equivalent environments.
	secureCookies bool
}

func NewAuthHandler(auth ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{auth: auth, secureCookies: secureCookies}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and issues the encrypted session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, cookieValue, expires, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(cookieValue, expires))

	// The body duplicates the cookie's user record for immediate client use.
	return c.JSON(http.StatusOK, user)
}

// Logout revokes the current session and expires the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}

	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	c.SetCookie(expired)

	return c.NoContent(http.StatusNoContent)
}

// Password returns a user's stored password in plaintext. Backs the admin
// UI's password reveal; admin-only via RBAC.
//
// @Summary      Reveal a user's password
// @Tags         users
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/users/{id}/password [get]
func (h *AuthHandler) Password(c echo.Context) error {
	plain, err := h.auth.Password(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"password": plain})
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}

// ctxUser returns the session user injected by the session middleware.
func ctxUser(c echo.Context) (domain.User, bool) {
	user, ok := c.Get("user").(domain.User)
	return user, ok
}
