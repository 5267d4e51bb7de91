// Package telemetry wires up structured logging and per-request correlation ids for
// the HTTP transport, per SPEC_FULL.md's ambient stack section.
package telemetry

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKey struct{}

// NewLogger builds the process-wide structured logger. Production builds use zap's
// JSON encoder so log lines are directly ingestible by the hosting platform;
// failures to initialize zap are fatal, since a service with no logging is not a
// service worth running.
func NewLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("telemetry: failed to build logger: " + err.Error())
	}
	return logger
}

// WithRequestID returns a context carrying a fresh request id, and the id itself.
func WithRequestID(ctx context.Context) (context.Context, string) {
	id := uuid.New().String()
	return context.WithValue(ctx, requestIDKey{}, id), id
}

// RequestID extracts the request id stashed by WithRequestID, or "" if none is set.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// ForRequest returns a child logger tagged with the context's request id.
func ForRequest(ctx context.Context, logger *zap.Logger) *zap.Logger {
	return logger.With(zap.String("request_id", RequestID(ctx)))
}
