package middleware

import (
	"errors"
	"net/http"

	"humancapital-api/internal/delivery/http/response"
	"humancapital-api/internal/domain"
	"humancapital-api/pkg/apperror"
	"humancapital-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgUnexpected = "An unexpected error occurred. Please try again later."

// ErrorHandler renders the last error attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		if appErr, ok := apperror.As(err); ok {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", response.RequestID(c),
					"path", c.Request.URL.Path,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Not found", nil)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal Server Error",
			"request_id", response.RequestID(c),
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, msgUnexpected, nil)
	}
}
