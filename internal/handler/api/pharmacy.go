package api

import (
	"errors"
	"net/http"

	"github.com/TARIFUDDIN/swasthalink/internal/domain/pharmacy"
	resdto "github.com/TARIFUDDIN/swasthalink/internal/handler/dto/response"
	"github.com/TARIFUDDIN/swasthalink/internal/handler/httperr"
	"github.com/TARIFUDDIN/swasthalink/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct {
	q queries.PharmacyQueries
}

func NewPharmacyHandler(q queries.PharmacyQueries) *PharmacyHandler {
	return &PharmacyHandler{q: q}
}

// @Summary Check medicine stock
// @Description Pharmacies holding an in-stock medicine matching the name, optionally filtered by village
// @Tags pharmacy
// @Produce json
// @Security BearerAuth
// @Param medicine query string true "Medicine name (substring, case-insensitive)"
// @Param village query string false "Village (substring, case-insensitive)"
// @Success 200 {array} resdto.PharmacyStockResponse
// @Failure 400 {object} httperr.Response
// @Router /pharmacy/check [get]
func (h *PharmacyHandler) CheckStock(c *gin.Context) {
	views, err := h.q.CheckStock(c.Request.Context(), c.Query("medicine"), c.Query("village"))
	if err != nil {
		switch {
		case errors.Is(err, pharmacy.ErrMedicineRequired):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Medicine name is required", nil)
		case errors.Is(err, pharmacy.ErrTermTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Search term is too long", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to check stock", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromPharmacyStock(views))
}
