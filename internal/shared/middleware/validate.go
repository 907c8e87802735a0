package middleware

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/apperror"
	"blog-backend/internal/shared/schema"
)

const (
	InvalidBodyMessage = "Invalid request body"

	paramsKey = "validated_params"
	bodyKey   = "validated_body"
)

// BindURI binds path parameters into T and validates them. The first
// violation is raised as INVALID_INPUT and the handler chain stops, so the
// store is never touched with a malformed id.
func BindURI[T schema.Validatable]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var params T
		if err := c.ShouldBindUri(&params); err != nil {
			abortInvalid(c, err.Error())
			return
		}

		parsed := schema.SafeParse(params)
		if !parsed.Success {
			abortInvalid(c, parsed.Issues.First().Message)
			return
		}

		c.Set(paramsKey, parsed.Data)
		c.Next()
	}
}

// BindBody decodes the JSON body into T and validates it. A missing body
// decodes as the zero T, the same as "{}".
func BindBody[T schema.Validatable]() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body T
		if err := bindJSON(c, &body); err != nil {
			abortInvalid(c, InvalidBodyMessage)
			return
		}

		parsed := schema.SafeParse(body)
		if !parsed.Success {
			abortInvalid(c, parsed.Issues.First().Message)
			return
		}

		c.Set(bodyKey, parsed.Data)
		c.Next()
	}
}

func bindJSON(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.Body == http.NoBody {
		return nil
	}
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Params returns the value stored by BindURI.
func Params[T any](c *gin.Context) T {
	return valueOf[T](c, paramsKey)
}

// Body returns the value stored by BindBody.
func Body[T any](c *gin.Context) T {
	return valueOf[T](c, bodyKey)
}

func valueOf[T any](c *gin.Context, key string) T {
	var zero T
	v, ok := c.Get(key)
	if !ok {
		return zero
	}
	typed, ok := v.(T)
	if !ok {
		return zero
	}
	return typed
}

func abortInvalid(c *gin.Context, message string) {
	_ = c.Error(apperror.InvalidInputError(message))
	c.Abort()
}
