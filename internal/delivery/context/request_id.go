package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyClientID is the key for the authenticated client in echo.Context.
	KeyClientID ContextKey = "client_id"

	// KeyRoles is the key for the roles of the authenticated caller in echo.Context.
	KeyRoles ContextKey = "roles"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"

	// maxRequestIDLength bounds ids accepted from callers.
	maxRequestIDLength = 128
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// NormalizeRequestID returns the caller's id when usable, a new one otherwise.
func NormalizeRequestID(requestID string) string {
	if requestID == "" || len(requestID) > maxRequestIDLength {
		return uuid.New().String()
	}

	return requestID
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, clientID uuid.UUID, roles []string) {
	c.Set(string(KeyClientID), clientID)
	c.Set(string(KeyRoles), roles)
}

// GetClientID returns the authenticated client of the request.
func GetClientID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(string(KeyClientID)).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoles returns the roles of the authenticated caller.
func GetRoles(c echo.Context) ([]string, bool) {
	roles, ok := c.Get(string(KeyRoles)).([]string)

	return roles, ok
}

// GetLogger extracts the request-scoped logger from context.Context.
// If not found, returns nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
