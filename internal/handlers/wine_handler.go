package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dmitrined/proProjectWineStore/internal/models"
	"github.com/dmitrined/proProjectWineStore/internal/services"
)

const defaultPageSize = 12

// ListWines is the catalog query endpoint. Every filter is optional and
// unrecognized filter values are ignored rather than rejected.
func ListWines(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.WineSearchRequest
		if err := c.ShouldBindQuery(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
		if err != nil || page <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid page parameter"))
			return
		}
		limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultPageSize)))
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid limit parameter"))
			return
		}

		offset := (page - 1) * limit
		wines, total, err := ws.QueryWines(c.Request.Context(), &req, offset, limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.PaginatedResponse(wines, page, limit, total))
	}
}

func GetWineBySlug(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		wine, err := ws.GetWineBySlug(c.Request.Context(), slug)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("wine not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(wine, ""))
	}
}

func ListFeaturedWines(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		wines, err := ws.ListFeaturedWines(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(wines, ""))
	}
}

func ListTopRatedWines(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		wines, err := ws.ListTopRatedWines(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(wines, ""))
	}
}

func ListGrapeVarieties(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		grapes, err := ws.ListGrapeVarieties(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(grapes, ""))
	}
}

func CreateWine(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var wine models.Wine
		if err := c.ShouldBindJSON(&wine); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := ws.CreateWine(c.Request.Context(), &wine)
		if err != nil {
			if errors.Is(err, models.ErrSlugTaken) {
				c.JSON(http.StatusConflict, models.ErrorResponse("a wine with this slug already exists"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Wine created successfully"))
	}
}

func UpdateWine(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var wine models.Wine
		if err := c.ShouldBindJSON(&wine); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		updated, err := ws.UpdateWine(c.Request.Context(), slug, &wine)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("wine not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(updated, "Wine updated successfully"))
	}
}

func DeleteWine(ws *services.WineService) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")
		if err := ws.DeleteWine(c.Request.Context(), slug); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("wine not found"))
				return
			}
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Wine deleted successfully"))
	}
}
