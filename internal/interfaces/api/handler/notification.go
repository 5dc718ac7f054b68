package handler

import (
	"strconv"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct {
	notifications service.NotificationService
	resp          *response.Writer
}

func NewNotificationHandler(notifications service.NotificationService, resp *response.Writer) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, resp: resp}
}

// List answers GET /api/notifications?unread=true&limit=N.
func (h *NotificationHandler) List(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	query := dto.NotificationQuery{
		UnreadOnly: c.QueryParam("unread") == "true",
		Limit:      limit,
	}
	list, err := h.notifications.List(c.Request().Context(), middleware.ActorFrom(c), query)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.notifications.fetchSuccess", list)
}

func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	count, err := h.notifications.UnreadCount(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.notifications.unreadCountSuccess", map[string]int64{"unreadCount": count})
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	updated, err := h.notifications.MarkAllRead(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.notifications.markAllReadSuccess", map[string]int64{"updated": updated})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	notification, err := h.notifications.MarkRead(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.notifications.markReadSuccess", notification)
}

func (h *NotificationHandler) Delete(c echo.Context) error {
	if err := h.notifications.Delete(c.Request().Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.notifications.deleteSuccess", nil)
}

// Broadcast answers POST /api/admin/notifications.
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req dto.BroadcastRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	sent, err := h.notifications.Broadcast(c.Request().Context(), middleware.ActorFrom(c), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.Created(c, "api.notifications.broadcastSuccess", map[string]int{"sent": sent})
}
