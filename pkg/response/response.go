package response

import (
	"errors"
	"net/http"

	"github.com/Suvay/sjnhs-web-draft/pkg/apperror"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Error translates an internal error into the JSON error body the API
// exposes. It is the only place that turns errors into HTTP statuses; a 500
// always carries a generic message while the real error goes to the log.
func Error(c *gin.Context, log *zap.Logger, err error) {
	code := apperror.MapErrorToStatus(err)

	msg := err.Error()
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		msg = appErr.Message
	}
	if code == http.StatusInternalServerError {
		if log != nil {
			log.Error("internal error",
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		msg = "Internal server error"
	}

	c.JSON(code, gin.H{"message": msg})
}

// Message writes a plain {message} body with the given status.
func Message(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"message": msg})
}
