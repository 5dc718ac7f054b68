package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	// Application Layer
	appService "apptracker/internal/application/service"

	// Infrastructure Layer
	"apptracker/internal/infrastructure/auth"
	"apptracker/internal/infrastructure/database"
	lineClient "apptracker/internal/infrastructure/line"
	"apptracker/internal/infrastructure/scheduler"

	// Interfaces Layer
	"apptracker/internal/interfaces/api/handler"
	"apptracker/internal/interfaces/api/response"
	"apptracker/internal/interfaces/api/router"

	// Packages
	"apptracker/internal/pkg/config"
	"apptracker/internal/pkg/i18n"
	appLogger "apptracker/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, schedulerService appService.SchedulerService, cfg config.ServerConfig, appLog appLogger.Logger, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	appLog.Info("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first so no scan runs against a closed database.
	if schedulerService != nil {
		schedulerService.Stop()
		appLog.Info("Scheduler stopped.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLog.Error("Server forced to shutdown", err)
	}

	if err := database.CloseDB(); err != nil {
		appLog.Error("Error closing database", err)
	} else {
		appLog.Info("Database connection closed.")
	}

	appLog.Info("Server exiting")
	done <- true
}

func main() {
	// --- Configuration ---
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	appLog := appLogger.New(cfg.Log.Level, cfg.Log.Format)
	appLog.Info("Logger initialized.")

	// --- Infrastructure ---
	db, err := database.NewDB(cfg.Database, appLog)
	if err != nil {
		appLog.Error("Failed to initialize database", err)
		os.Exit(1)
	}
	if cfg.Database.Seed {
		if err := database.Seed(context.Background(), db, cfg.Auth.BcryptCost, appLog); err != nil {
			appLog.Error("Failed to seed database", err)
			os.Exit(1)
		}
	}
	userRepo := database.NewUserRepository(db)
	reminderRepo := database.NewReminderRepository(db)
	notificationRepo := database.NewNotificationRepository(db)
	universityRepo := database.NewUniversityRepository(db)
	applicationRepo := database.NewApplicationRepository(db)
	appLog.Info("Database and repositories initialized.")

	translator, err := i18n.New(cfg.I18n.DefaultLanguage)
	if err != nil {
		appLog.Error("Failed to load translations", err)
		os.Exit(1)
	}
	loc := cfg.App.Location()
	clock := appService.NewClock(loc)

	line, err := lineClient.NewClient(cfg.Line, appLog)
	if err != nil {
		appLog.Error("Failed to initialize LINE client", err)
		os.Exit(1)
	}
	cronScheduler := scheduler.NewScheduler(loc, appLog)
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Auth.RememberTTL)

	// --- Application Services ---
	authSvc := appService.NewAuthService(userRepo, tokens, translator, cfg.Auth.BcryptCost, appLog)
	userSvc := appService.NewUserService(userRepo, translator, appLog)
	notificationSvc := appService.NewNotificationService(notificationRepo, userRepo, translator, line, appLog)
	reminderSvc := appService.NewReminderService(reminderRepo, clock, appLog)
	universitySvc := appService.NewUniversityService(universityRepo, appLog)
	applicationSvc := appService.NewApplicationService(applicationRepo, universityRepo, notificationSvc, clock, appLog)
	dashboardSvc := appService.NewDashboardService(applicationRepo, reminderRepo, notificationRepo, clock, appLog)
	appLog.Info("Application services initialized.")

	var schedulerSvc appService.SchedulerService
	if cfg.Scheduler.Enabled {
		schedulerSvc = appService.NewSchedulerService(
			cronScheduler, reminderRepo, notificationSvc,
			cfg.Scheduler.DeadlineScanSpec, cfg.Scheduler.LeadTime, clock, appLog,
		)
		if err := schedulerSvc.Start(); err != nil {
			appLog.Error("Failed to start deadline scheduler", err)
			os.Exit(1)
		}
	} else {
		appLog.Warn("Deadline scheduler disabled.")
	}

	// --- API Handlers ---
	writer := response.NewWriter(translator, appLog)
	routerCfg := &router.Config{
		AuthHandler:         handler.NewAuthHandler(authSvc, cfg.Auth, writer),
		ProfileHandler:      handler.NewProfileHandler(userSvc, writer),
		ReminderHandler:     handler.NewReminderHandler(reminderSvc, writer),
		NotificationHandler: handler.NewNotificationHandler(notificationSvc, writer),
		UniversityHandler:   handler.NewUniversityHandler(universitySvc, writer),
		ApplicationHandler:  handler.NewApplicationHandler(applicationSvc, writer),
		DashboardHandler:    handler.NewDashboardHandler(dashboardSvc, writer),
		HealthHandler:       handler.NewHealthHandler(func() error { return database.Ping(db) }),
		AuthService:         authSvc,
		CookieName:          cfg.Auth.CookieName,
		AllowOrigins:        cfg.Server.AllowOrigins,
		Translator:          translator,
		Writer:              writer,
		Logger:              appLog,
	}
	if line.Enabled() {
		routerCfg.LineHandler = handler.NewLineHandler(line, userSvc, reminderSvc, translator, clock, appLog)
	}
	appLog.Info("API handlers initialized.")

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.NewRouter(routerCfg),
		IdleTimeout:  cfg.Server.IdleTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, cfg.Server, appLog, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}
