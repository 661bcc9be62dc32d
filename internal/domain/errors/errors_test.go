package errors

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsMatchesSentinel(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("title is required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrNotFound))
	assert.Equal(t, "Input validation failed: title is required", detailed.Error())
	assert.Equal(t, "title is required", detailed.Details())
}

func TestBaseError_WrapKeepsAppError(t *testing.T) {
	err := ErrPostNotFound.WrapMessage("remove post")

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "POST_NOT_FOUND", appErr.ErrorCode())
}

func TestBackendError(t *testing.T) {
	cause := errors.New("connection refused")
	err := errors.Wrap(NewBackendError(cause, "list posts"), "usecase")

	assert.True(t, errors.Is(err, ErrBackendUnavailable))
	assert.True(t, errors.Is(err, cause))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
	assert.Equal(t, "BACKEND_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, "list posts", appErr.Details())
}
