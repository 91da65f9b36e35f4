package contextutils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appError *AppError
		expected string
	}{
		{
			name: "error with details",
			appError: &AppError{
				Code:     ErrorCodeConfigMismatch,
				Severity: SeverityFatal,
				Message:  "Vocabulary and override table do not match",
				Details:  "3 verbs, 2 overrides",
			},
			expected: "CONFIG_MISMATCH: Vocabulary and override table do not match - 3 verbs, 2 overrides",
		},
		{
			name: "error without details",
			appError: &AppError{
				Code:     ErrorCodeRecordNotFound,
				Severity: SeverityInfo,
				Message:  "Record not found",
			},
			expected: "RECORD_NOT_FOUND: Record not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appError.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("disk full")
	appErr := &AppError{
		Code:     ErrorCodeWriteFailed,
		Severity: SeverityError,
		Message:  "Write failed",
		Cause:    cause,
	}

	assert.Equal(t, cause, appErr.Unwrap())
	assert.True(t, errors.Is(appErr, cause))
}

func TestAppError_Is(t *testing.T) {
	err1 := &AppError{Code: ErrorCodeInvalidInput}
	err2 := &AppError{Code: ErrorCodeInvalidInput}
	err3 := &AppError{Code: ErrorCodeRecordNotFound}

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.False(t, err1.Is(errors.New("regular error")))
}

func TestNewAppErrorWithCause(t *testing.T) {
	cause := errors.New("short write")
	err := NewAppErrorWithCause(ErrorCodeWriteFailed, SeverityError, "Write failed", "record 12", cause)

	assert.Equal(t, ErrorCodeWriteFailed, err.Code)
	assert.Equal(t, SeverityError, err.Severity)
	assert.Equal(t, "Write failed", err.Message)
	assert.Equal(t, "record 12", err.Details)
	assert.Equal(t, cause, err.Cause)
}

func TestWrapError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, WrapError(nil, "context"))
	})

	t.Run("AppError wrapping keeps code", func(t *testing.T) {
		wrapped := WrapError(ErrConfigMismatch, "pre-flight check")

		var appErr *AppError
		require.True(t, errors.As(wrapped, &appErr))
		assert.Equal(t, ErrorCodeConfigMismatch, appErr.Code)
		assert.Equal(t, SeverityFatal, appErr.Severity)
		assert.Equal(t, "pre-flight check", appErr.Message)
		assert.Contains(t, appErr.Details, "do not match")
		assert.True(t, errors.Is(wrapped, ErrConfigMismatch))
	})

	t.Run("regular error wrapping", func(t *testing.T) {
		wrapped := WrapError(errors.New("boom"), "context")

		assert.Equal(t, ErrorCodeInternalError, GetErrorCode(wrapped))
		assert.Equal(t, SeverityError, GetErrorSeverity(wrapped))
		assert.Equal(t, "INTERNAL_SERVER_ERROR: context - boom", wrapped.Error())
	})

	t.Run("nested wrapping", func(t *testing.T) {
		inner := WrapError(ErrWriteFailed, "flush")
		outer := fmt.Errorf("run: %w", inner)
		wrapped := WrapError(outer, "generate")
		assert.Equal(t, ErrorCodeWriteFailed, GetErrorCode(wrapped))
	})
}

func TestWrapErrorf(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Nil(t, WrapErrorf(nil, "ctx %d", 1))
	})

	t.Run("with %w", func(t *testing.T) {
		cause := errors.New("permission denied")
		wrapped := WrapErrorf(cause, "failed to open %s: %w", "out.jsonl", cause)
		assert.Equal(t, ErrorCodeInternalError, GetErrorCode(wrapped))
		assert.True(t, errors.Is(wrapped, cause))
		assert.Contains(t, wrapped.Error(), "failed to open out.jsonl: permission denied")
	})

	t.Run("AppError without %w", func(t *testing.T) {
		wrapped := WrapErrorf(ErrRecordNotFound, "unknown set %q", "basic")
		assert.Equal(t, ErrorCodeRecordNotFound, GetErrorCode(wrapped))
		assert.Contains(t, wrapped.Error(), `unknown set "basic"`)
	})
}

func TestErrorWithContextf(t *testing.T) {
	err := ErrorWithContextf("template %d has no answer", 4)
	assert.Equal(t, "INTERNAL_SERVER_ERROR: template 4 has no answer", err.Error())
}

func TestIsError(t *testing.T) {
	err := WrapError(ErrValidationFailed, "schema")
	assert.True(t, IsError(err, ErrValidationFailed))
	assert.False(t, IsError(err, ErrConfigMismatch))
	assert.False(t, IsError(errors.New("plain"), ErrValidationFailed))
}

func TestIsFatal(t *testing.T) {
	assert.True(t, IsFatal(ErrConfigMismatch))
	assert.True(t, IsFatal(WrapError(ErrValidationFailed, "vocabulary")))
	assert.False(t, IsFatal(ErrWriteFailed))
	assert.False(t, IsFatal(errors.New("plain")))
}

func TestAppError_ToMap(t *testing.T) {
	err := NewAppErrorWithCause(ErrorCodeWriteFailed, SeverityError, "Write failed", "line 7", errors.New("EPIPE"))
	m := err.ToMap()
	assert.Equal(t, "WRITE_FAILED", m["code"])
	assert.Equal(t, "Write failed", m["message"])
	assert.Equal(t, "error", m["severity"])
	assert.Equal(t, "line 7", m["details"])
	assert.Equal(t, "EPIPE", m["cause"])

	info := ErrRecordNotFound.ToMap()
	assert.NotContains(t, info, "details")
	assert.NotContains(t, info, "cause")
}
