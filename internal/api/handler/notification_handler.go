package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/siriart/billing-admin/internal/core/domain"
	"github.com/siriart/billing-admin/internal/core/ports"
)

const defaultNotificationLimit = 50

// NotificationHandler serves the admin UI's notification bell feed.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

type createNotificationRequest struct {
	Type      string `json:"type"    validate:"required"`
	Title     string `json:"title"   validate:"required"`
	Message   string `json:"message"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	SyncLogID int64  `json:"syncLogId"`
}

type listNotificationsResponse struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int                   `json:"unreadCount"`
	Total         int                   `json:"total"`
}

// List returns notifications with optional unreadOnly and limit query
// params. Total is the size of the whole feed, not of the filtered page.
func (h *NotificationHandler) List(c echo.Context) error {
	unreadOnly := c.QueryParam("unreadOnly") == "true"
	limit := defaultNotificationLimit
	if raw := c.QueryParam("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	notifications, unread, total, err := h.service.List(c.Request().Context(), unreadOnly, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listNotificationsResponse{
		Notifications: notifications,
		UnreadCount:   unread,
		Total:         total,
	})
}

// Get returns one notification by id.
func (h *NotificationHandler) Get(c echo.Context) error {
	notification, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notification)
}

// Create appends a notification to the feed.
func (h *NotificationHandler) Create(c echo.Context) error {
	var req createNotificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	created, err := h.service.Create(c.Request().Context(), domain.Notification{
		Type:      req.Type,
		Title:     req.Title,
		Message:   req.Message,
		UserID:    req.UserID,
		UserName:  req.UserName,
		UserEmail: req.UserEmail,
		SyncLogID: req.SyncLogID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

type notificationActionRequest struct {
	Action string `json:"action"`
}

// MarkAllRead handles the collection-level PUT. The only recognised action
// is "markAllRead"; anything else is a 400.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	var req notificationActionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.Action != "markAllRead" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid action")
	}

	if err := h.service.MarkAllRead(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "All notifications marked as read"})
}

// MarkRead flags one notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	updated, err := h.service.MarkRead(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}
