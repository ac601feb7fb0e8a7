// File: seatwise/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"seatwise/config"
	"seatwise/cron"
	"seatwise/database"
	calendarRepoPkg "seatwise/database/repository/calendar"
	settingsRepoPkg "seatwise/database/repository/settings"
	tablesRepoPkg "seatwise/database/repository/tables"
	"seatwise/handlers"
	"seatwise/middleware"
	"seatwise/routes"
	"seatwise/services/calendar"
	"seatwise/services/notification"
	"seatwise/services/optimizer"
	"seatwise/services/settings"
	"seatwise/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	calendarRepo := calendarRepoPkg.NewMongoCalendarRepo()
	tableRepo := tablesRepoPkg.NewMongoTableRepo()

	// reminder queue.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	settingsService := &settings.DefaultSettingsService{
		Repo:     settingsRepo,
		Cache:    utils.GetCacheClient(),
		CacheTTL: time.Duration(config.AppConfig.SettingsCacheTTLSeconds) * time.Second,
	}
	calendarService := &calendar.DefaultCalendarService{
		Repo:         calendarRepo,
		Settings:     settingsService,
		Queue:        queueClient,
		ReminderLead: time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute,
	}
	optimizerService := &optimizer.DefaultOptimizerService{
		Repo: tableRepo,
	}
	notificationService := &notification.DefaultNotificationService{}

	settingsHandler := handlers.NewSettingsHandler(settingsService, logger)
	calendarHandler := handlers.NewCalendarHandler(calendarService, logger)
	tableHandler := handlers.NewTableHandler(optimizerService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Settings endpoints.
		InitializeSettingsHandler: settingsHandler.InitializeSettingsHandler,
		UpdateSettingsHandler:     settingsHandler.UpdateSettingsHandler,
		GetSettingsHandler:        settingsHandler.GetSettingsHandler,

		// Calendar endpoints.
		InitializeDayHandler:       calendarHandler.InitializeDayHandler,
		AddBookingHandler:          calendarHandler.AddBookingHandler,
		UpdateBookingStatusHandler: calendarHandler.UpdateBookingStatusHandler,
		GetBookingsHandler:         calendarHandler.GetBookingsHandler,
		GetAvailabilityHandler:     calendarHandler.GetAvailabilityHandler,

		// Table optimizer endpoints.
		RegisterTableHandler:      tableHandler.RegisterTableHandler,
		GetTableIDsHandler:        tableHandler.GetTableIDsHandler,
		GetRecommendationsHandler: tableHandler.GetRecommendationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background workers.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	// Drain the day and registry actors after the server stops accepting
	// requests.
	calendarService.Stop()
	optimizerService.Stop()

	logger.Sugar().Info("main: server stopped gracefully")
}
