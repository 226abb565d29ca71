package errors

import (
	"net/http"
	"time"

	"loyalty/internal/errors"
)

// ProfileCompletionPath is where a client completes the profile required for redemptions.
const ProfileCompletionPath = "/api/v1/profile"

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Scan-related errors
	ErrInvalidTag = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TAG",
		"This tag does not belong to any shop",
		"",
	)

	ErrShopNotFound = NewBaseError(
		http.StatusNotFound,
		"SHOP_NOT_FOUND",
		"Shop not found",
		"",
	)

	// Redemption-related errors
	ErrIncompleteProfile = NewBaseError(
		http.StatusUnprocessableEntity,
		"INCOMPLETE_PROFILE",
		"Complete your profile before redeeming",
		ProfileCompletionPath,
	)

	ErrInsufficientPoints = NewBaseError(
		http.StatusConflict,
		"INSUFFICIENT_POINTS",
		"Not enough points for this reward",
		"",
	)

	ErrGiftAlreadyUsed = NewBaseError(
		http.StatusConflict,
		"GIFT_ALREADY_USED",
		"This gift has already been used",
		"",
	)

	ErrRewardNotFound = NewBaseError(
		http.StatusNotFound,
		"REWARD_NOT_FOUND",
		"Reward not found",
		"",
	)

	ErrGiftNotFound = NewBaseError(
		http.StatusNotFound,
		"GIFT_NOT_FOUND",
		"Gift not found",
		"",
	)

	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"REGISTRATION_NOT_FOUND",
		"No loyalty card at this shop yet",
		"",
	)

	// Partnership-related errors
	ErrPartnerLinkInconsistent = NewBaseError(
		http.StatusInternalServerError,
		"PARTNER_LINK_INCONSISTENT",
		"Partner link is inconsistent",
		"",
	)

	// Client-related errors
	ErrClientNotFound = NewBaseError(
		http.StatusNotFound,
		"CLIENT_NOT_FOUND",
		"Client not found",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// CooldownActiveError is returned when a scan arrives before the shop's revisit cooldown elapsed.
type CooldownActiveError struct {
	retryAt time.Time
}

// NewCooldownActiveError creates a cooldown error that expires at retryAt.
func NewCooldownActiveError(retryAt time.Time) *CooldownActiveError {
	return &CooldownActiveError{retryAt: retryAt.UTC()}
}

// Error implements the error interface
func (e *CooldownActiveError) Error() string {
	return "cooldown active until " + e.retryAt.Format(time.RFC3339)
}

// RetryAt returns the earliest time a new scan earns points.
func (e *CooldownActiveError) RetryAt() time.Time {
	return e.retryAt
}

// HTTPCode returns the HTTP status code
func (e *CooldownActiveError) HTTPCode() int {
	return http.StatusTooManyRequests
}

// ErrorCode returns the business error code
func (e *CooldownActiveError) ErrorCode() string {
	return "COOLDOWN_ACTIVE"
}

// Message returns the user-friendly error message
func (e *CooldownActiveError) Message() string {
	return "You already scanned here recently"
}

// Details returns the retry time in RFC3339
func (e *CooldownActiveError) Details() string {
	return e.retryAt.Format(time.RFC3339)
}

// PersistenceError represents a store failure, implementing the AppError interface.
// Callers may retry the operation.
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a store-related error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "persistence failed").Error()
}

// Unwrap returns the store error
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_ERROR"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "Storage is temporarily unavailable, please retry"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}
