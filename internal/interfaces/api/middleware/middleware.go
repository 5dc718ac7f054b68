// Package middleware resolves the per-request language and actor.
package middleware

import (
	"strings"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/response"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/i18n"

	"github.com/labstack/echo/v4"
)

const actorKey = "actor"

// Language stores the request language: a supported ?lang= wins, then Accept-Language.
func Language(translator *i18n.Translator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			lang := strings.ToLower(strings.TrimSpace(c.QueryParam("lang")))
			if !translator.Supported(lang) {
				lang = translator.Negotiate(c.Request().Header.Get("Accept-Language"))
			}
			c.Set(response.LangKey, lang)
			return next(c)
		}
	}
}

// Auth requires a session token from the cookie or a Bearer header.
func Auth(auth service.AuthService, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFrom(c, cookieName)
			if token == "" {
				return appErrors.Unauthorized("api.auth.unauthorized")
			}
			actor, err := auth.Authenticate(c.Request().Context(), token)
			if err != nil {
				return err
			}
			c.Set(actorKey, actor)
			return next(c)
		}
	}
}

// AdminOnly rejects actors without the admin role. It must run after Auth.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !ActorFrom(c).IsAdmin() {
				return appErrors.Forbidden("api.auth.forbidden")
			}
			return next(c)
		}
	}
}

// ActorFrom returns the authenticated actor, or the zero Actor outside Auth.
func ActorFrom(c echo.Context) dto.Actor {
	actor, _ := c.Get(actorKey).(dto.Actor)
	return actor
}

// TokenFrom reads the session token, preferring the Authorization header.
func TokenFrom(c echo.Context, cookieName string) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie.Value
	}
	return ""
}
