package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"calendar-reminders/internal/application/dto"
	"calendar-reminders/internal/application/policy"
	"calendar-reminders/internal/application/service"
	"calendar-reminders/internal/pkg/clock"
	"calendar-reminders/internal/pkg/dates"
	appErrors "calendar-reminders/internal/pkg/errors"
	"calendar-reminders/internal/pkg/logger"
)

// ReminderHandler handles reminder HTTP requests.
type ReminderHandler struct {
	reminderService service.ReminderService
	rangePolicy     policy.DateRangePolicy
	clk             clock.Clock
	log             logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(
	reminderService service.ReminderService,
	rangePolicy policy.DateRangePolicy,
	clk clock.Clock,
	log logger.Logger,
) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		rangePolicy:     rangePolicy,
		clk:             clk,
		log:             log,
	}
}

// GetReminders handles GET /reminders, optionally filtered by ?date=YYYY-MM-DD.
func (h *ReminderHandler) GetReminders(c echo.Context) error {
	ctx := c.Request().Context()

	dateParam := c.QueryParam("date")
	if dateParam == "" {
		reminders, err := h.reminderService.GetAllReminders(ctx)
		if err != nil {
			return h.serviceError(c, err)
		}
		return c.JSON(http.StatusOK, dto.ToReminderResponseList(reminders))
	}

	date, err := dates.ParseDate(dateParam)
	if err != nil {
		return errorJSON(c, h.clk, http.StatusBadRequest, fmt.Sprintf("Invalid value '%s' for parameter 'date'", dateParam))
	}
	reminders, err := h.reminderService.GetRemindersForDate(ctx, date)
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponseList(reminders))
}

// GetAllowedDateRange handles GET /reminders/range.
func (h *ReminderHandler) GetAllowedDateRange(c echo.Context) error {
	r := h.rangePolicy.CurrentRange()
	h.log.Info(fmt.Sprintf("Returning allowed reminder date range: %s to %s",
		dates.FormatDate(r.MinDate), dates.FormatDate(r.MaxDate)))
	return c.JSON(http.StatusOK, dto.ToAllowedDateRangeResponse(r.MinDate, r.MaxDate))
}

// CreateReminder handles POST /reminders.
func (h *ReminderHandler) CreateReminder(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, h.clk, http.StatusBadRequest, "Malformed request body")
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		return fieldErrorJSON(c, h.clk, http.StatusBadRequest, "Validation failed", fieldErrors)
	}

	created, err := h.reminderService.CreateReminder(ctx, req.ToEntity())
	if err != nil {
		return h.serviceError(c, err)
	}

	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/reminders/%d", created.ID))
	return c.JSON(http.StatusCreated, dto.ToReminderResponse(created))
}

// UpdateReminder handles PUT /reminders/:id.
func (h *ReminderHandler) UpdateReminder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, h.clk, http.StatusBadRequest, fmt.Sprintf("Invalid value '%s' for parameter 'id'", c.Param("id")))
	}

	var req dto.ReminderRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, h.clk, http.StatusBadRequest, "Malformed request body")
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		return fieldErrorJSON(c, h.clk, http.StatusBadRequest, "Validation failed", fieldErrors)
	}

	updated, err := h.reminderService.UpdateReminder(ctx, id, req.ToEntity())
	if err != nil {
		return h.serviceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ToReminderResponse(updated))
}

// DeleteReminder handles DELETE /reminders/:id.
func (h *ReminderHandler) DeleteReminder(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return errorJSON(c, h.clk, http.StatusBadRequest, fmt.Sprintf("Invalid value '%s' for parameter 'id'", c.Param("id")))
	}

	if err := h.reminderService.DeleteReminder(ctx, id); err != nil {
		return h.serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteRemindersByDate handles DELETE /reminders?date=YYYY-MM-DD.
func (h *ReminderHandler) DeleteRemindersByDate(c echo.Context) error {
	ctx := c.Request().Context()

	dateParam := c.QueryParam("date")
	date, err := dates.ParseDate(dateParam)
	if err != nil {
		return errorJSON(c, h.clk, http.StatusBadRequest, fmt.Sprintf("Invalid value '%s' for parameter 'date'", dateParam))
	}

	if err := h.reminderService.DeleteRemindersByDate(ctx, date); err != nil {
		return h.serviceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// serviceError translates application errors to HTTP responses.
func (h *ReminderHandler) serviceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, appErrors.ErrReminderNotFound):
		return errorJSON(c, h.clk, http.StatusNotFound, err.Error())
	case errors.Is(err, appErrors.ErrDateOutOfRange),
		errors.Is(err, appErrors.ErrDateRequired),
		errors.Is(err, appErrors.ErrReminderRequired):
		return errorJSON(c, h.clk, http.StatusBadRequest, err.Error())
	default:
		h.log.Error(fmt.Sprintf("Unexpected error handling %s %s", c.Request().Method, c.Request().URL.Path), err)
		return errorJSON(c, h.clk, http.StatusInternalServerError, "Unexpected error occurred")
	}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
