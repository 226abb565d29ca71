package errors

import (
	"net/http"
	"testing"
	"time"

	"loyalty/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_IsMatchesCopiesWithDetails(t *testing.T) {
	withDetails := ErrInvalidTag.WithDetails("tag-42")

	assert.True(t, errors.Is(withDetails, ErrInvalidTag))
	assert.True(t, errors.Is(errors.Wrap(withDetails, "resolve"), ErrInvalidTag))
	assert.False(t, errors.Is(withDetails, ErrShopNotFound))
	assert.Equal(t, "tag-42", withDetails.Details())
}

func TestCooldownActiveError(t *testing.T) {
	retryAt := time.Date(2024, 5, 1, 12, 30, 0, 0, time.FixedZone("CET", 3600))
	err := NewCooldownActiveError(retryAt)

	appErr, ok := errors.AsType[AppError](errors.Wrap(err, "scan"))
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, appErr.HTTPCode())
	assert.Equal(t, "COOLDOWN_ACTIVE", appErr.ErrorCode())
	assert.Equal(t, "2024-05-01T11:30:00Z", appErr.Details())
	assert.True(t, err.RetryAt().Equal(retryAt))
}

func TestPersistenceError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewPersistenceError(cause, "save registration")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPCode())
	assert.Equal(t, "PERSISTENCE_ERROR", err.ErrorCode())
}

func TestIncompleteProfile_CarriesCompletionPath(t *testing.T) {
	assert.Equal(t, ProfileCompletionPath, ErrIncompleteProfile.Details())
	assert.Equal(t, http.StatusUnprocessableEntity, ErrIncompleteProfile.HTTPCode())
}
