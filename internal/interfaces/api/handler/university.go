package handler

import (
	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"

	"github.com/labstack/echo/v4"
)

type UniversityHandler struct {
	universities service.UniversityService
	resp         *response.Writer
}

func NewUniversityHandler(universities service.UniversityService, resp *response.Writer) *UniversityHandler {
	return &UniversityHandler{universities: universities, resp: resp}
}

// List answers GET /api/universities?search=&country=.
func (h *UniversityHandler) List(c echo.Context) error {
	list, err := h.universities.List(c.Request().Context(), c.QueryParam("search"), c.QueryParam("country"))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.universities.fetchSuccess", list)
}

func (h *UniversityHandler) Countries(c echo.Context) error {
	countries, err := h.universities.Countries(c.Request().Context())
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.universities.countriesSuccess", countries)
}

func (h *UniversityHandler) Get(c echo.Context) error {
	university, err := h.universities.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.universities.fetchDetailSuccess", university)
}

func (h *UniversityHandler) Programs(c echo.Context) error {
	programs, err := h.universities.Programs(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.universities.fetchProgramsSuccess", programs)
}

func (h *UniversityHandler) Create(c echo.Context) error {
	var req dto.UniversityRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	university, err := h.universities.Create(c.Request().Context(), middleware.ActorFrom(c), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.Created(c, "api.universities.createSuccess", university)
}

func (h *UniversityHandler) Update(c echo.Context) error {
	var req dto.UniversityRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	university, err := h.universities.Update(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.universities.updateSuccess", university)
}

func (h *UniversityHandler) Delete(c echo.Context) error {
	if err := h.universities.Delete(c.Request().Context(), middleware.ActorFrom(c), c.Param("id")); err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.universities.deleteSuccess", nil)
}

func (h *UniversityHandler) CreateProgram(c echo.Context) error {
	var req dto.ProgramRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	program, err := h.universities.CreateProgram(c.Request().Context(), middleware.ActorFrom(c), c.Param("id"), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.Created(c, "api.universities.programCreateSuccess", program)
}
