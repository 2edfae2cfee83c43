package errors

import (
	"io"
	"net/http"
	"testing"

	"devconnects/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("text: required")

	assert.True(t, errors.Is(detailed, ErrValidationFailed))
	assert.False(t, errors.Is(detailed, ErrInvalidIdentity))
	assert.Equal(t, "text: required", detailed.Details())
	assert.Equal(t, http.StatusBadRequest, detailed.HTTPCode())
}

func TestBaseError_WrapMessageIsStillAppError(t *testing.T) {
	err := ErrUserNotFound.WrapMessage("follow target")

	appErr, ok := errors.AsType[AppError](err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	assert.Equal(t, "USER_NOT_FOUND", appErr.ErrorCode())
	assert.Equal(t, "User not found", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(io.ErrUnexpectedEOF, "insert message")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.Contains(t, err.Error(), "database execution failed")
}
