package handler

import (
	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"

	"github.com/labstack/echo/v4"
)

type ApplicationHandler struct {
	applications service.ApplicationService
	resp         *response.Writer
}

func NewApplicationHandler(applications service.ApplicationService, resp *response.Writer) *ApplicationHandler {
	return &ApplicationHandler{applications: applications, resp: resp}
}

func (h *ApplicationHandler) List(c echo.Context) error {
	list, err := h.applications.List(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.applications.fetchSuccess", list)
}

func (h *ApplicationHandler) Stats(c echo.Context) error {
	stats, err := h.applications.Stats(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.applications.statsSuccess", stats)
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	var req dto.CreateApplicationRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	application, err := h.applications.Create(c.Request().Context(), middleware.ActorFrom(c), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.Created(c, "api.applications.createSuccess", application)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	application, err := h.applications.Get(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.applications.fetchSuccess", application)
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	var req dto.UpdateApplicationRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	application, err := h.applications.Update(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.applications.updateSuccess", application)
}

func (h *ApplicationHandler) Delete(c echo.Context) error {
	if err := h.applications.Delete(c.Request().Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.applications.deleteSuccess", nil)
}
