package handler

import (
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/pkg/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func formatValidationError(err error) string {
	return validator.FormatValidationError(err)
}

// parseID parses the :id path parameter. On failure it writes the 400 and
// returns false; callers just return.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
