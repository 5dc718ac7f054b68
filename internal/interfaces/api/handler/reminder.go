package handler

import (
	"strconv"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"

	"github.com/labstack/echo/v4"
)

type ReminderHandler struct {
	reminders service.ReminderService
	resp      *response.Writer
}

func NewReminderHandler(reminders service.ReminderService, resp *response.Writer) *ReminderHandler {
	return &ReminderHandler{reminders: reminders, resp: resp}
}

// List answers GET /api/reminders. With ?upcoming=true it returns incomplete
// reminders due within ?days (default 7) in due date order.
func (h *ReminderHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	actor := middleware.ActorFrom(c)

	var (
		list []dto.ReminderResponse
		err  error
	)
	if c.QueryParam("upcoming") == "true" {
		days, _ := strconv.Atoi(c.QueryParam("days"))
		list, err = h.reminders.ListUpcoming(ctx, actor, days)
	} else {
		list, err = h.reminders.List(ctx, actor)
	}
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.reminders.fetchSuccess", list)
}

func (h *ReminderHandler) Stats(c echo.Context) error {
	stats, err := h.reminders.Stats(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.reminders.statsSuccess", stats)
}

func (h *ReminderHandler) Create(c echo.Context) error {
	var req dto.CreateReminderRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	reminder, err := h.reminders.Create(c.Request().Context(), middleware.ActorFrom(c), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.Created(c, "api.reminders.createSuccess", reminder)
}

func (h *ReminderHandler) Get(c echo.Context) error {
	reminder, err := h.reminders.Get(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.reminders.fetchSuccess", reminder)
}

func (h *ReminderHandler) Update(c echo.Context) error {
	var req dto.UpdateReminderRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	reminder, err := h.reminders.Update(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.reminders.updateSuccess", reminder)
}

func (h *ReminderHandler) Complete(c echo.Context) error {
	reminder, err := h.reminders.MarkCompleted(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.reminders.completeSuccess", reminder)
}

func (h *ReminderHandler) Delete(c echo.Context) error {
	if err := h.reminders.Delete(c.Request().Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.reminders.deleteSuccess", nil)
}
