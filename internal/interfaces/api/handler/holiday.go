package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"calendar-reminders/internal/application/dto"
	"calendar-reminders/internal/application/service"
	"calendar-reminders/internal/pkg/clock"
	"calendar-reminders/internal/pkg/logger"
)

// HolidayHandler handles public holiday HTTP requests.
type HolidayHandler struct {
	holidayService service.HolidayService
	clk            clock.Clock
	log            logger.Logger
}

// NewHolidayHandler creates a new HolidayHandler.
func NewHolidayHandler(holidayService service.HolidayService, clk clock.Clock, log logger.Logger) *HolidayHandler {
	return &HolidayHandler{
		holidayService: holidayService,
		clk:            clk,
		log:            log,
	}
}

// GetHolidays handles GET /holidays?year=YYYY. The year defaults to the
// current year read from the clock.
func (h *HolidayHandler) GetHolidays(c echo.Context) error {
	ctx := c.Request().Context()

	year := h.clk.Now().Year()
	if yearParam := c.QueryParam("year"); yearParam != "" {
		parsed, err := strconv.Atoi(yearParam)
		if err != nil {
			return errorJSON(c, h.clk, http.StatusBadRequest, fmt.Sprintf("Invalid value '%s' for parameter 'year'", yearParam))
		}
		year = parsed
	}

	holidays := h.holidayService.GetPublicHolidays(ctx, year)
	h.log.Info(fmt.Sprintf("Fetched %d holidays for year %d", len(holidays), year))
	return c.JSON(http.StatusOK, dto.ToPublicHolidayResponseList(holidays))
}
