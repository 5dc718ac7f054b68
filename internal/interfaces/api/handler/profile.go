package handler

import (
	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"

	"github.com/labstack/echo/v4"
)

type ProfileHandler struct {
	users service.UserService
	resp  *response.Writer
}

func NewProfileHandler(users service.UserService, resp *response.Writer) *ProfileHandler {
	return &ProfileHandler{users: users, resp: resp}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.users.GetProfile(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.profile.fetchSuccess", user)
}

func (h *ProfileHandler) Update(c echo.Context) error {
	var req dto.UpdateProfileRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	user, err := h.users.UpdateProfile(c.Request().Context(), middleware.ActorFrom(c), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.profile.updateSuccess", user)
}

// CreateLineLink issues a code the user sends to the LINE bot.
func (h *ProfileHandler) CreateLineLink(c echo.Context) error {
	code, err := h.users.CreateLineLinkCode(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.profile.lineLinkSuccess", dto.LineLinkResponse{Code: code})
}
