package handler

import (
	"errors"
	"net/http"

	"winecellar/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// writeError maps a service error onto the status taxonomy: 400 for
// malformed input, 401 for credential failures, 404 for absent
// resources and 503 for anything the storage backend did to us.
// Authorization (403) never reaches here; the subject middleware
// handles it before the service runs.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrEmailInUse):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrWineNotFound),
		errors.Is(err, service.ErrProducerNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service unavailable"})
	}
}
