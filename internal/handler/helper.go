package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"anoa.com/gatheringregistry/pkg/validator"
)

func formatValidationError(err error) string {
	return validator.FormatValidationError(err)
}

// queryID parses the ?id= parameter used by every DELETE endpoint.
func queryID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
