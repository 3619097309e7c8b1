package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"college-organizer/internal/service"
)

// respondErr maps service errors onto the wire: validation problems carry
// field detail, missing records are an explicit not-found outcome, and
// anything else is a store failure fatal to this request only.
func respondErr(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{"error": verr})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
