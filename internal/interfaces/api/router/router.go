package router

import (
	"errors"
	"fmt"
	"net/http"

	"apptracker/internal/application/service"
	"apptracker/internal/interfaces/api/handler"
	apiMiddleware "apptracker/internal/interfaces/api/middleware"
	"apptracker/internal/interfaces/api/response"
	"apptracker/internal/pkg/i18n"
	"apptracker/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Config holds the dependencies for the router.
type Config struct {
	AuthHandler         *handler.AuthHandler
	ProfileHandler      *handler.ProfileHandler
	ReminderHandler     *handler.ReminderHandler
	NotificationHandler *handler.NotificationHandler
	UniversityHandler   *handler.UniversityHandler
	ApplicationHandler  *handler.ApplicationHandler
	DashboardHandler    *handler.DashboardHandler
	HealthHandler       *handler.HealthHandler
	LineHandler         *handler.LineHandler // Nil when LINE is not configured

	AuthService  service.AuthService
	CookieName   string
	AllowOrigins []string
	Translator   *i18n.Translator
	Writer       *response.Writer
	Logger       logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = errorHandler(cfg.Writer, cfg.Logger)

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Accept-Language", "X-Line-Signature"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	e.Use(apiMiddleware.Language(cfg.Translator))

	e.GET("/health", cfg.HealthHandler.Check)

	// LINE Webhook Endpoint
	if cfg.LineHandler != nil {
		e.POST("/callback", cfg.LineHandler.HandleWebhook)
	}

	api := e.Group("/api")
	requireAuth := apiMiddleware.Auth(cfg.AuthService, cfg.CookieName)
	adminOnly := apiMiddleware.AdminOnly()

	authGroup := api.Group("/auth")
	authGroup.POST("/register", cfg.AuthHandler.Register)
	authGroup.POST("/login", cfg.AuthHandler.Login)
	authGroup.POST("/logout", cfg.AuthHandler.Logout)
	authGroup.GET("/me", cfg.AuthHandler.Me, requireAuth)

	profile := api.Group("/profile", requireAuth)
	profile.GET("", cfg.ProfileHandler.Get)
	profile.PUT("", cfg.ProfileHandler.Update)
	profile.POST("/line-link", cfg.ProfileHandler.CreateLineLink)

	reminders := api.Group("/reminders", requireAuth)
	reminders.GET("", cfg.ReminderHandler.List)
	reminders.POST("", cfg.ReminderHandler.Create)
	reminders.GET("/stats", cfg.ReminderHandler.Stats)
	reminders.GET("/:id", cfg.ReminderHandler.Get)
	reminders.PUT("/:id", cfg.ReminderHandler.Update)
	reminders.DELETE("/:id", cfg.ReminderHandler.Delete)
	reminders.PUT("/:id/complete", cfg.ReminderHandler.Complete)

	notifications := api.Group("/notifications", requireAuth)
	notifications.GET("", cfg.NotificationHandler.List)
	notifications.POST("", cfg.NotificationHandler.MarkAllRead)
	notifications.GET("/unread-count", cfg.NotificationHandler.UnreadCount)
	notifications.PUT("/read-all", cfg.NotificationHandler.MarkAllRead)
	notifications.PUT("/:id", cfg.NotificationHandler.MarkRead)
	notifications.DELETE("/:id", cfg.NotificationHandler.Delete)

	universities := api.Group("/universities", requireAuth)
	universities.GET("", cfg.UniversityHandler.List)
	universities.GET("/countries", cfg.UniversityHandler.Countries)
	universities.GET("/:id", cfg.UniversityHandler.Get)
	universities.GET("/:id/programs", cfg.UniversityHandler.Programs)
	universities.POST("", cfg.UniversityHandler.Create, adminOnly)
	universities.PUT("/:id", cfg.UniversityHandler.Update, adminOnly)
	universities.DELETE("/:id", cfg.UniversityHandler.Delete, adminOnly)
	universities.POST("/:id/programs", cfg.UniversityHandler.CreateProgram, adminOnly)

	applications := api.Group("/applications", requireAuth)
	applications.GET("", cfg.ApplicationHandler.List)
	applications.POST("", cfg.ApplicationHandler.Create)
	applications.GET("/stats", cfg.ApplicationHandler.Stats)
	applications.GET("/:id", cfg.ApplicationHandler.Get)
	applications.PUT("/:id", cfg.ApplicationHandler.Update)
	applications.DELETE("/:id", cfg.ApplicationHandler.Delete)

	api.GET("/dashboard/stats", cfg.DashboardHandler.Stats, requireAuth)

	admin := api.Group("/admin", requireAuth, adminOnly)
	admin.POST("/notifications", cfg.NotificationHandler.Broadcast)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}

// errorHandler renders every error that escapes a handler or middleware as an envelope.
func errorHandler(w *response.Writer, log logger.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			key := "api.general.error"
			switch httpErr.Code {
			case http.StatusNotFound:
				key = "api.general.notFound"
			case http.StatusMethodNotAllowed:
				key = "api.general.methodNotAllowed"
			case http.StatusUnauthorized:
				key = "api.auth.unauthorized"
			case http.StatusInternalServerError:
				key = "api.general.serverError"
			}
			err = w.Status(c, httpErr.Code, key)
		} else {
			err = w.Fail(c, err)
		}
		if err != nil {
			log.Error("Failed to write error response", err)
		}
	}
}
