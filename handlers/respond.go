package handlers

import (
	"errors"
	"net/http"

	"seatwise/services/calendar"
	"seatwise/services/optimizer"
	"seatwise/services/settings"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps the engine's error taxonomy onto HTTP statuses:
// not-initialized is 404, a rejected configuration or request is 400, and
// anything else is 500. Negative results never reach here; they are
// ordinary 200 responses.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, settings.ErrNotInitialized),
		errors.Is(err, calendar.ErrDayNotInitialized),
		errors.Is(err, optimizer.ErrNotInitialized):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func isValidationError(err error) bool {
	var sv *settings.ValidationError
	var cv *calendar.ValidationError
	var ov *optimizer.ValidationError
	return errors.As(err, &sv) || errors.As(err, &cv) || errors.As(err, &ov)
}
