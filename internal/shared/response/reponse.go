package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/apperror"
)

// ErrorBody is the JSON body of every non-2xx response.
type ErrorBody struct {
	Key     apperror.Key `json:"key"`
	Message string       `json:"message"`
	Stack   string       `json:"stack,omitempty"`
	Error   string       `json:"error,omitempty"`
}

// Success responses
func JSON(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

func Created(c *gin.Context, data interface{}) {
	JSON(c, http.StatusCreated, data)
}

// NoContent writes 204 with an empty body.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
	c.Writer.WriteHeaderNow()
}

// Error responses
//
// Error renders err with the status mapped from its key. The stack is only
// included when debug is set.
func Error(c *gin.Context, err *apperror.Error, debug bool) {
	body := ErrorBody{
		Key:     err.Key,
		Message: err.Message,
		Error:   err.Detail,
	}
	if debug {
		body.Stack = err.Stack()
	}
	c.AbortWithStatusJSON(err.Status(), body)
}
