package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-ordering/database"
	"github.com/yeremiapane/restaurant-ordering/services"
	"github.com/yeremiapane/restaurant-ordering/utils"
)

// respondServiceError maps service and store errors onto HTTP responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidReference):
		utils.RespondDetail(c, http.StatusBadRequest, "Invalid item id format")
	case errors.Is(err, services.ErrItemNotFound):
		utils.RespondDetail(c, http.StatusBadRequest, "One or more items not found")
	case errors.Is(err, services.ErrNoItems), errors.Is(err, services.ErrInvalidQuantity):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrInvalidLimit):
		utils.RespondError(c, http.StatusUnprocessableEntity, err)
	case errors.Is(err, database.ErrStoreUnavailable):
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondDetail(c, http.StatusServiceUnavailable, "Database not initialized")
	default:
		utils.ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		_ = c.Error(err)
		utils.RespondDetail(c, http.StatusInternalServerError, "Internal server error")
	}
}

func respondValidationError(c *gin.Context, err error) {
	utils.RespondDetail(c, http.StatusUnprocessableEntity, utils.ValidationMessage(err))
}
