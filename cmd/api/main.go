package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appService "calendar-reminders/internal/application/service"

	"calendar-reminders/internal/application/policy"
	"calendar-reminders/internal/config"
	"calendar-reminders/internal/domain/provider"
	"calendar-reminders/internal/infrastructure/database/sqlite"
	"calendar-reminders/internal/infrastructure/holiday/nager"
	"calendar-reminders/internal/infrastructure/holiday/offline"
	"calendar-reminders/internal/infrastructure/scheduler"
	"calendar-reminders/internal/interfaces/api/handler"
	"calendar-reminders/internal/interfaces/api/router"
	appClock "calendar-reminders/internal/pkg/clock"
	appLogger "calendar-reminders/internal/pkg/logger"
)

func gracefulShutdown(apiServer *http.Server, retentionSvc appService.RetentionService, cronScheduler *scheduler.Scheduler, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	log.Println("Stopping retention sweep...")
	retentionSvc.Stop()
	cronScheduler.Stop()

	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// The context informs the server it has 5 seconds to finish the
	// requests it is currently handling.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	cfg, err := config.Load()
	if err != nil {
		appLog.Error("Failed to load configuration", err)
		os.Exit(1)
	}

	clk := appClock.System()

	// --- Infrastructure ---
	db := sqlite.NewDB(cfg.DBURL)
	reminderRepo := sqlite.NewReminderRepository(db)
	appLog.Info("Database and repositories initialized.")

	var holidayProvider provider.HolidayProvider
	if cfg.Nager.UseStaticMock {
		holidayProvider = offline.NewProvider()
		appLog.Info("Using offline static holiday provider.")
	} else {
		holidayProvider = nager.NewClient(cfg.Nager.BaseURL, cfg.Nager.CountryCode, appLog)
		appLog.Info(fmt.Sprintf("Using Nager holiday provider (base URL: %s, country: %s)", cfg.Nager.BaseURL, cfg.Nager.CountryCode))
	}

	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Application Services ---
	rangePolicy := policy.NewDateRangePolicy(clk)
	reminderSvc := appService.NewReminderService(reminderRepo, rangePolicy, appLog)
	holidaySvc := appService.NewHolidayService(holidayProvider, appLog)
	retentionSvc := appService.NewRetentionService(cronScheduler, reminderRepo, clk, cfg.Retention.Days, cfg.Retention.CronSpec, appLog)
	appLog.Info("Application services initialized.")

	if err := retentionSvc.Start(); err != nil {
		// Log the error but continue starting the server
		appLog.Error("Failed to start retention sweep", err)
	}

	// --- API Handlers ---
	reminderHandler := handler.NewReminderHandler(reminderSvc, rangePolicy, clk, appLog)
	holidayHandler := handler.NewHolidayHandler(holidaySvc, clk, appLog)
	appLog.Info("API handlers initialized.")

	// --- Router ---
	routerCfg := &router.Config{
		ReminderHandler: reminderHandler,
		HolidayHandler:  holidayHandler,
		Logger:          appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, retentionSvc, cronScheduler, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
