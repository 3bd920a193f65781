package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability *queries.Availability
}

func NewAvailabilityHandler(availability *queries.Availability) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// @Summary Month availability
// @Description Month grid with per-day slot occupancy
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Success 200 {object} resdto.MonthAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/{year}/{month} [get]
func (h *AvailabilityHandler) Month(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	result, err := h.availability.Month(year, month)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCalendarDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid calendar date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromMonthAvailability(result))
}

// @Summary Day availability
// @Description Full slot column for one calendar day
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param year path int true "Year"
// @Param month path int true "Month (1-12)"
// @Param day path int true "Day of month"
// @Success 200 {object} resdto.DayAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /availability/{year}/{month}/{day} [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	year, month, ok := parseYearMonth(c)
	if !ok {
		return
	}

	day, err := strconv.Atoi(c.Param("day"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid day", nil)
		return
	}

	result, err := h.availability.Day(year, month, day)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCalendarDate) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid calendar date", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDayAvailability(result))
}

func parseYearMonth(c *gin.Context) (int, time.Month, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid year", nil)
		return 0, 0, false
	}
	monthNum, err := strconv.Atoi(c.Param("month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		if err == nil {
			err = errors.New("month out of range")
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid month", nil)
		return 0, 0, false
	}
	return year, time.Month(monthNum), true
}
