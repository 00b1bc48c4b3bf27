package storefront

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/light-bringer/storefront-service/internal/app/cart/domain"
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/app/handoff"
)

// mapDomainError converts domain errors to HTTP responses with a JSON
// error envelope.
func mapDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})

	case errors.Is(err, handoff.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "handoff not found"})

	case errors.Is(err, handoff.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": "handoff already completed"})

	case errors.Is(err, cartdomain.ErrInvalidQuantity),
		errors.Is(err, cartdomain.ErrEmptyCartID),
		errors.Is(err, handoff.ErrMissingName),
		errors.Is(err, handoff.ErrMissingPhone),
		errors.Is(err, handoff.ErrMissingMessage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
