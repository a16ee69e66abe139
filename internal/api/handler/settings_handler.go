package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

// SettingsHandler handles the single settings object document. The shape is
// owned by the admin UI; the server persists what it is given.
type SettingsHandler struct {
	service ports.SettingsService
}

func NewSettingsHandler(service ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get returns the settings document, {} when none was saved yet.
func (h *SettingsHandler) Get(c echo.Context) error {
	settings, err := h.service.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

// Replace overwrites the settings document and echoes it back with 200.
func (h *SettingsHandler) Replace(c echo.Context) error {
	var settings domain.Settings
	if err := c.Bind(&settings); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	saved, err := h.service.Replace(c.Request().Context(), settings)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saved)
}
