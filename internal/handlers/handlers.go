package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"dealer-inventory-backend/internal/apperrors"
	"dealer-inventory-backend/internal/logger"
	"dealer-inventory-backend/internal/models"
)

// respondError maps a service error onto the wire: AppError values keep
// their status and client-safe message, anything else becomes a 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("request failed",
				"code", appErr.Code,
				"error", appErr.Internal,
			)
		}
		c.JSON(appErr.StatusCode, models.ErrorResponse{
			Error:   appErr.Code,
			Message: appErr.Message,
		})
		return
	}

	logger.Get().Errorw("request failed", "error", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "An internal error occurred",
	})
}

// pathID parses a positive integer path parameter, answering 400 itself
// when the value is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "invalid " + name,
		})
		return 0, false
	}
	return id, true
}
