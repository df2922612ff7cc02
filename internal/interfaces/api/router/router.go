package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"calendar-reminders/internal/interfaces/api/handler"
	"calendar-reminders/internal/pkg/logger"
)

// Config holds the dependencies for the router.
type Config struct {
	ReminderHandler *handler.ReminderHandler
	HolidayHandler  *handler.HolidayHandler
	Logger          logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogHost:      true,
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
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	// Reminder routes
	e.GET("/reminders", cfg.ReminderHandler.GetReminders)
	e.GET("/reminders/range", cfg.ReminderHandler.GetAllowedDateRange)
	e.POST("/reminders", cfg.ReminderHandler.CreateReminder)
	e.PUT("/reminders/:id", cfg.ReminderHandler.UpdateReminder)
	e.DELETE("/reminders/:id", cfg.ReminderHandler.DeleteReminder)
	e.DELETE("/reminders", cfg.ReminderHandler.DeleteRemindersByDate)

	// Holiday routes
	e.GET("/holidays", cfg.HolidayHandler.GetHolidays)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
