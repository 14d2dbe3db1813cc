package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrined/proProjectWineStore/internal/models"
	"github.com/dmitrined/proProjectWineStore/internal/services"
)

// RecommendWines runs the sommelier scorer and returns the top matches for
// the requested dish.
func RecommendWines(ss *services.SommelierService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.SommelierRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		recs, err := ss.Recommend(c.Request.Context(), &req)
		if err != nil {
			var verr validator.ValidationErrors
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(recs, ""))
	}
}

// SearchWinesAI is reserved for the semantic search integration. Until that
// ships it answers with an empty result set so clients can depend on the
// route.
func SearchWinesAI() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.SuccessResponse([]*models.Wine{}, ""))
	}
}
