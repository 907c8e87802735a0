package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		key  Key
		want int
	}{
		{NotFound, http.StatusNotFound},
		{Conflict, http.StatusConflict},
		{Validation, http.StatusUnprocessableEntity},
		{InvalidInput, http.StatusBadRequest},
		{Forbidden, http.StatusForbidden},
		{Unauthorized, http.StatusUnauthorized},
		{InternalServer, http.StatusInternalServerError},
		{Key("SOMETHING_ELSE"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.key))
		})
	}
}

func TestAsKey(t *testing.T) {
	key, ok := AsKey(NotFound)
	assert.True(t, ok)
	assert.Equal(t, NotFound, key)

	key, ok = AsKey(fmt.Errorf("lookup: %w", Conflict))
	assert.True(t, ok)
	assert.Equal(t, Conflict, key)

	_, ok = AsKey(errors.New("connection reset"))
	assert.False(t, ok)

	_, ok = AsKey(Key("INVALID_KEY"))
	assert.False(t, ok)

	assert.False(t, IsKey(nil))
}

func TestFromKey(t *testing.T) {
	err := FromKey(NotFound, "Error when get author by id 42")

	assert.Equal(t, NotFound, err.Key)
	assert.Equal(t, "Error when get author by id 42", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status())
	assert.True(t, errors.Is(err, NotFound))
	assert.Contains(t, err.Stack(), "Error when get author by id 42")
}

func TestInternal(t *testing.T) {
	err := Internal(errors.New("server selection timeout"))

	assert.Equal(t, InternalServer, err.Key)
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.Equal(t, "server selection timeout", err.Detail)
	assert.Equal(t, http.StatusInternalServerError, err.Status())
	assert.NotEmpty(t, err.Stack())
}

func TestWithMessage(t *testing.T) {
	err := WithMessage(NotFound, "Error when get post by id 1")

	var appErr *Error
	if assert.True(t, errors.As(err, &appErr)) {
		assert.Equal(t, NotFound, appErr.Key)
		assert.Equal(t, "Error when get post by id 1", appErr.Message)
	}

	unexpected := errors.New("socket closed")
	assert.Same(t, unexpected, WithMessage(unexpected, "ignored"))
}
