package handler

import (
	"net/http"
	"time"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"
	"apptracker/internal/pkg/config"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves registration, login and the session cookie.
type AuthHandler struct {
	auth   service.AuthService
	cookie config.AuthConfig
	resp   *response.Writer
}

func NewAuthHandler(auth service.AuthService, cookie config.AuthConfig, resp *response.Writer) *AuthHandler {
	return &AuthHandler{
		auth:   auth,
		cookie: cookie,
		resp:   resp,
	}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	if req.Language == "" {
		req.Language = h.resp.Language(c)
	}
	result, err := h.auth.Register(c.Request().Context(), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	h.setCookie(c, result.Token, result.ExpiresAt)
	return h.resp.Created(c, "api.auth.registerSuccess", result)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bind(c, &req); err != nil {
		return h.resp.Fail(c, err)
	}
	result, err := h.auth.Login(c.Request().Context(), req)
	if err != nil {
		return h.resp.Fail(c, err)
	}
	h.setCookie(c, result.Token, result.ExpiresAt)
	return h.resp.OK(c, "api.auth.loginSuccess", result)
}

// Logout clears the session cookie. Tokens are stateless, so nothing else changes.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.setCookie(c, "", time.Unix(0, 0))
	return h.resp.OK(c, "api.auth.logoutSuccess", nil)
}

func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.auth.Me(c.Request().Context(), middleware.ActorFrom(c))
	if err != nil {
		return h.resp.Fail(c, err)
	}
	return h.resp.OK(c, "api.auth.fetchSuccess", map[string]interface{}{"user": user})
}

func (h *AuthHandler) setCookie(c echo.Context, token string, expires time.Time) {
	cookie := &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.cookie.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	c.SetCookie(cookie)
}
