package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/httperr"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/middleware"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const NextCursorHeader = "X-Next-Cursor"

type HealthRecordHandler struct {
	cmds commands.HealthRecordCommands
	q    queries.HealthRecordQueries
}

func NewHealthRecordHandler(cmds commands.HealthRecordCommands, q queries.HealthRecordQueries) *HealthRecordHandler {
	return &HealthRecordHandler{cmds: cmds, q: q}
}

// @Summary List health records
// @Description Own records, newest first. The next page cursor is returned in the X-Next-Cursor header.
// @Tags health-records
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size (default 50, max 200)"
// @Param after query string false "Cursor from a previous page"
// @Success 200 {array} resdto.HealthRecordResponse
// @Failure 400 {object} httperr.Response
// @Router /health-records [get]
func (h *HealthRecordHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	limit := 0
	if s := c.Query("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid limit", nil)
			return
		}
		limit = v
	}

	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	views, next, err := h.q.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list health records", nil)
		return
	}

	if next != nil {
		c.Header(NextCursorHeader, next.After)
	}
	c.JSON(http.StatusOK, resdto.FromHealthRecordList(views))
}

// @Summary Create health record
// @Description Add a record to the caller's history
// @Tags health-records
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateHealthRecordRequest true "Health record"
// @Success 201 {object} resdto.HealthRecordResponse
// @Failure 400 {object} httperr.Response
// @Router /health-records [post]
func (h *HealthRecordHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateHealthRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.cmds.Create(c.Request.Context(), req, userID)
	if err != nil {
		if errors.Is(err, commands.ErrInvalidHealthRecord) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid health record", gin.H{"reason": err.Error()})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create health record", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load health record", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromHealthRecordView(view))
}

// @Summary Get health record
// @Tags health-records
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.HealthRecordResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /health-records/{id} [get]
func (h *HealthRecordHandler) Get(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid record ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, queries.ErrHealthRecordNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Health record not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHealthRecordView(view))
}
