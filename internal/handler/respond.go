package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"paralympics-api-go/internal/schema"
	"paralympics-api-go/internal/store"
)

// notFound writes the 404 body for a missing entity
func notFound(c *gin.Context, entity string) {
	c.JSON(http.StatusNotFound, gin.H{"error": entity + " not found."})
}

// respondError is the central translation of internal failures to HTTP
// responses: missing keys map to 404, validation failures to 400 with the
// per-field reasons as the body, anything else to a logged 500.
func respondError(c *gin.Context, err error, entity string) {
	var verr *schema.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		notFound(c, entity)
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, verr.Fields)
	default:
		log.Printf("Unhandled %s error: %v", entity, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
