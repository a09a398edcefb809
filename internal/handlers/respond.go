package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stagepass/api/internal/helpers"
	"github.com/stagepass/api/internal/models"
)

// respondError maps the error taxonomy onto HTTP statuses and emits
// the {data, message, error} envelope.
func respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, models.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, models.ErrValidation):
		status = http.StatusBadRequest
	}
	c.JSON(status, models.ErrorResponse(message, err))
}

// respondBindError reports a malformed or incomplete request body.
func respondBindError(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse(message, err))
}

// currentClaims pulls the token claims the auth middleware stored on
// the request context.
func currentClaims(c *gin.Context) (*helpers.Claims, bool) {
	value, exists := c.Get("user")
	if !exists {
		return nil, false
	}
	claims, ok := value.(*helpers.Claims)
	return claims, ok
}
