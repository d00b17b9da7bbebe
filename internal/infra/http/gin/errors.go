package ginserver

import (
	"errors"
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/domain/booking"
	"staybook/internal/domain/property"
	"staybook/internal/domain/shared/validation"
	"staybook/internal/domain/user"
)

// writeError maps domain failures onto HTTP statuses: broken invariants are
// the client's fault, unknown ids are 404, anything else is a 500. The
// validation message goes out verbatim.
func writeError(c *gin.Context, err error) {
	switch {
	case validation.IsError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, property.ErrNotFound), errors.Is(err, user.ErrNotFound), errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
