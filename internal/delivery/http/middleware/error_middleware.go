package middleware

import (
	"errors"
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/pkg/apperror"
	"jobboard-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Kind, appErr.Message, nil)
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "kind", appErr.Kind, "error", appErr.Err)
				}
			} else {
				// Never expose internal error details to clients.
				logger.Log.Error("Unhandled error", "error", err)
				response.Error(c, http.StatusInternalServerError, apperror.KindInternal,
					"An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
