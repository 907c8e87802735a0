package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/response"
)

// ErrorHandler is the single place where errors raised by handlers become
// HTTP responses. Handlers report failures with c.Error and return.
//
//   - *apperror.Error renders with the status mapped from its key
//   - a bare apperror.Key renders with the key as message
//   - anything else renders as 500 INTERNAL_SERVER keeping the original message
//
// debug adds the captured stack to the body.
func ErrorHandler(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := toAppError(c.Errors.Last().Err)

		event := log.Warn()
		if appErr.Key == apperror.InternalServer {
			event = log.Error().Str("error", appErr.Detail)
		}
		event.
			Str("request_id", GetRequestID(c)).
			Str("key", string(appErr.Key)).
			Msg(appErr.Message)

		if c.Writer.Written() {
			return
		}
		response.Error(c, appErr, debug)
	}
}

func toAppError(err error) *apperror.Error {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	if key, ok := apperror.AsKey(err); ok {
		return apperror.FromKey(key, string(key))
	}
	return apperror.Internal(err)
}

// NotFoundHandler answers unmatched routes through the error pipeline.
func NotFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperror.FromKey(apperror.NotFound, RouteNotFoundMessage))
	}
}

const RouteNotFoundMessage = "Route not found"
