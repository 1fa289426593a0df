package response

import (
	"net/http"

	"anoa.com/gatheringregistry/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Error standardized error response
func Error(c *gin.Context, err error) {
	code := apperror.MapErrorToStatus(err)

	// Log internal errors, return a generic message to the caller
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("internal error")
		c.JSON(code, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(code, gin.H{"error": err.Error()})
}

// Success writes the affected record(s) as JSON
func Success(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// Deleted is the standard body for successful deletes
func Deleted(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
