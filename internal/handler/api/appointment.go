package api

import (
	"errors"
	"net/http"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/httperr"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	queries  queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, qs queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary Submit an appointment
// @Description Book a slot with a message
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SubmitAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Submit(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var req reqdto.SubmitAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	input := commands.SubmitAppointmentInput{
		ScheduledAt: req.ScheduledAt,
		Message:     req.TrimmedMessage(),
	}

	view, err := h.commands.Submit(c.Request.Context(), input, identity.UserID, identity.DisplayName)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDateRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Scheduled date is required", nil)
		case errors.Is(err, commands.ErrMessageRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Message is required", nil)
		case errors.Is(err, commands.ErrOutOfHorizon):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Scheduled time is outside the bookable window", nil)
		case errors.Is(err, commands.ErrSlotTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot is already taken", nil)
		case errors.Is(err, commands.ErrWriteTimeout):
			httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Booking timed out, please retry", nil)
		case errors.Is(err, commands.ErrDomainValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description List appointments visible to the caller
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentListItemResponse
// @Failure 503 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	items, err := h.queries.ListFor(c.Request.Context(), identity.UserID, identity.Role)
	if err != nil {
		if errors.Is(err, queries.ErrSnapshotUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Appointment data is not available yet", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentList(items))
}

// @Summary Get an appointment
// @Description Fetch a single appointment by id
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentListItemResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	item, err := h.queries.GetByID(c.Request.Context(), id, identity.UserID, identity.Role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, queries.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to view this appointment", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAppointmentListItem(item))
}

// @Summary Delete an appointment
// @Description Remove an appointment; deleting an absent id succeeds
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), id, identity.UserID, identity.Role); err != nil {
		if errors.Is(err, commands.ErrForbidden) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to delete this appointment", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Mark an appointment completed
// @Description Operator-only explicit completion override
// @Tags appointments
// @Accept json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Param request body reqdto.SetCompletedRequest true "Completion flag"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id}/completed [patch]
func (h *AppointmentHandler) SetCompleted(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment id", nil)
		return
	}

	var req reqdto.SetCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.commands.SetCompleted(c.Request.Context(), id, *req.Completed, identity.Role); err != nil {
		switch {
		case errors.Is(err, commands.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Operator role required", nil)
		case errors.Is(err, commands.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Appointment status counts
// @Description Pending and completed tallies over the whole collection
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.StatusCountsResponse
// @Router /appointments/counts [get]
func (h *AppointmentHandler) StatusCounts(c *gin.Context) {
	counts, err := h.queries.StatusCounts(c.Request.Context())
	if err != nil {
		if errors.Is(err, queries.ErrSnapshotUnavailable) {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Appointment data is not available yet", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromStatusCounts(counts))
}
