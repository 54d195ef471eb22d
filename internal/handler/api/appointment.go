package api

import (
	"errors"
	"net/http"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/appointment"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/httperr"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	cmds commands.AppointmentCommands
	q    queries.AppointmentQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries) *AppointmentHandler {
	return &AppointmentHandler{cmds: cmds, q: q}
}

// @Summary Book appointment
// @Description Book a free slot with a doctor
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateAppointmentRequest true "Appointment request"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrDoctorNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
		case errors.Is(err, appointment.ErrSlotUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is not available", nil)
		case errors.Is(err, commands.ErrInvalidAppointment),
			errors.Is(err, appointment.ErrDateInPast),
			errors.Is(err, appointment.ErrDateBeyondHorizon),
			errors.Is(err, appointment.ErrInvalidTimeLabel),
			errors.Is(err, appointment.ErrSelfBooking):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment request", gin.H{"reason": err.Error()})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to book appointment", nil)
		}
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load appointment", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromAppointmentView(view))
}

// @Summary List appointments
// @Description Appointments of the caller, as doctor for doctors and as patient otherwise
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 401 {object} httperr.Response
// @Router /appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	views, err := h.q.ListForActor(c.Request.Context(), userID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list appointments", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentList(views))
}

// @Summary Get appointment
// @Description Get an appointment the caller takes part in
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAppointmentNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
		case errors.Is(err, queries.ErrAppointmentAccess):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointmentView(view))
}

// @Summary Cancel appointment
// @Description Cancel a scheduled appointment (patient, doctor or admin)
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/cancel [post]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format", nil)
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), id, userID, role); err != nil {
		h.abortTransition(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Complete appointment
// @Description Mark a scheduled appointment as completed (its doctor only)
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{id}/complete [post]
func (h *AppointmentHandler) Complete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid appointment ID format", nil)
		return
	}

	if err := h.cmds.Complete(c.Request.Context(), id, userID); err != nil {
		h.abortTransition(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) abortTransition(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrAppointmentNotFoundWrite):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	case errors.Is(err, commands.ErrAppointmentForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errors.Is(err, appointment.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Appointment is no longer scheduled", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
