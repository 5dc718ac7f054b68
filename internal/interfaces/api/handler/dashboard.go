package handler

import (
	"net/http"

	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboard service.DashboardService
	resp      *response.Writer
}

func NewDashboardHandler(dashboard service.DashboardService, resp *response.Writer) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, resp: resp}
}

func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboard.Stats(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.dashboard.fetchSuccess", stats)
}

// HealthHandler reports whether the service and its database are reachable.
type HealthHandler struct {
	ping func() error
}

func NewHealthHandler(ping func() error) *HealthHandler {
	return &HealthHandler{ping: ping}
}

func (h *HealthHandler) Check(c echo.Context) error {
	if err := h.ping(); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok", "database": "ok"})
}
