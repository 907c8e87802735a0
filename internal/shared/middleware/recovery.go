package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"blog-backend/internal/shared/apperror"
)

// Recovery turns a panic into an INTERNAL_SERVER error rendered by ErrorHandler.
// It must be registered after ErrorHandler.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("panic: %v", rec)
			}

			log.Error().
				Str("request_id", GetRequestID(c)).
				Interface("error", rec).
				Msg("Panic recovered")

			_ = c.Error(apperror.Internal(err))
			c.Abort()
		}()

		c.Next()
	}
}
