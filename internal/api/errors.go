package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fritter-app/fritter/internal/db"
	"github.com/fritter-app/fritter/internal/models"
	"github.com/fritter-app/fritter/pkg/logging"

	"go.uber.org/zap"
)

// Error represents an API error with an HTTP status
type Error struct {
	Code    int
	Message string
}

// NewError creates a new API error
func NewError(code int, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *Error) Error() string {
	return e.Message
}

// respondError translates an error into the response envelope. Store
// sentinels map onto the taxonomy: missing references are 404, duplicate
// creations 409, validation failures 400. Anything else is a store-layer
// failure and aborts the request with a 500.
func respondError(c *gin.Context, err error) {
	var apiErr *Error
	switch {
	case errors.As(err, &apiErr):
		c.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
	case errors.Is(err, db.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, db.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInertMute),
		errors.Is(err, models.ErrContentEmpty),
		errors.Is(err, models.ErrContentTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logging.GetLogger().Error("Request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
