package middleware

import (
	"errors"
	"net/http"

	"portfolio-site/internal/delivery/http/response"
	"portfolio-site/pkg/apperror"
	"portfolio-site/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Warn("Request failed",
					"path", c.Request.URL.Path,
					"status", appErr.Code,
					"error", appErr.Err,
					"request_id", GetRequestID(c))
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Internal details stay in the server log
		logger.Log.Error("Internal Server Error",
			"path", c.Request.URL.Path,
			"error", err,
			"request_id", GetRequestID(c))
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
