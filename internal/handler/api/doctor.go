package api

import (
	"errors"
	"net/http"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/availability"
	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/httperr"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DoctorHandler struct {
	cmds         commands.DoctorCommands
	q            queries.DoctorQueries
	availability queries.AvailabilityQueries
}

func NewDoctorHandler(cmds commands.DoctorCommands, q queries.DoctorQueries, availability queries.AvailabilityQueries) *DoctorHandler {
	return &DoctorHandler{cmds: cmds, q: q, availability: availability}
}

// @Summary List doctors
// @Description List doctors with their booked slots
// @Tags doctors
// @Produce json
// @Param specialization query string false "Case-insensitive specialization filter"
// @Success 200 {array} resdto.DoctorListItemResponse
// @Failure 500 {object} httperr.Response
// @Router /doctors [get]
func (h *DoctorHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context(), c.Query("specialization"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list doctors", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDoctorList(items))
}

// @Summary Get doctor
// @Description Get a doctor profile by ID
// @Tags doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Success 200 {object} resdto.DoctorResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid doctor ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, queries.ErrDoctorNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDoctorView(view))
}

// @Summary Doctor availability
// @Description Free time labels of a doctor on a date, in template order
// @Tags doctors
// @Produce json
// @Param id path string true "Doctor ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /doctors/{id}/availability [get]
func (h *DoctorHandler) Availability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid doctor ID format", nil)
		return
	}

	raw := c.Query("date")
	if raw == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Date is required", nil)
		return
	}
	date, err := availability.ParseDate(raw)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	slots, err := h.availability.Resolve(c.Request.Context(), id, date)
	if err != nil {
		if errors.Is(err, queries.ErrDoctorNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to resolve availability", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.NewAvailabilityResponse(id, date, slots))
}

// @Summary Update own availability
// @Description Replace the caller's weekly availability template
// @Tags doctors
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateAvailabilityRequest true "Weekday to time labels"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /doctors/me/availability [put]
func (h *DoctorHandler) UpdateMyAvailability(c *gin.Context) {
	doctorID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	if err := h.cmds.UpdateAvailability(c.Request.Context(), doctorID, req); err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSchedule):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid availability schedule", gin.H{"reason": err.Error()})
		case errors.Is(err, commands.ErrDoctorNotFoundCmd):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Doctor not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
