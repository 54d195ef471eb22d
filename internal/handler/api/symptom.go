package api

import (
	"errors"
	"net/http"

	reqdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/request"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/httperr"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SymptomHandler struct {
	cmds commands.SymptomCommands
}

func NewSymptomHandler(cmds commands.SymptomCommands) *SymptomHandler {
	return &SymptomHandler{cmds: cmds}
}

// @Summary Symptom check
// @Description First-line guidance for the described symptoms. Rate limited per client IP.
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SymptomCheckRequest true "Symptoms"
// @Success 200 {object} resdto.SymptomAdviceResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /ai-symptoms [post]
func (h *SymptomHandler) Analyze(c *gin.Context) {
	var req reqdto.SymptomCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Symptoms are required", nil)
		return
	}

	advice, err := h.cmds.Analyze(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSymptomQuery):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid symptom description", gin.H{"reason": err.Error()})
		case errors.Is(err, commands.ErrAdviceUnavailable):
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Symptom checker is not available", nil)
		default:
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Failed to analyze symptoms. Please try again later.", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.SymptomAdviceResponse{Advice: advice})
}
