package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/dmitrined/proProjectWineStore/internal/models"
	"github.com/dmitrined/proProjectWineStore/internal/services"
)

// CalculateCart reprices the submitted cart against current catalog prices
// and availability.
func CalculateCart(cs *services.CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req services.CartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		result, err := cs.Calculate(c.Request.Context(), &req)
		if err != nil {
			var verr validator.ValidationErrors
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(result, ""))
	}
}
