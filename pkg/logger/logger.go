// Package logger wraps zap with a context-aware API. A logger can be attached
// to a context so that request- or run-scoped fields (like the run ID) follow
// the work through every layer without threading a logger argument around.
package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment selects the human-readable console encoder.
	DevelopmentEnvironment = "development"
	// ProductionEnvironment selects the JSON encoder with sampling.
	ProductionEnvironment = "production"
)

// root is the fallback logger used when a context carries none.
var root = zap.NewNop() //nolint: gochecknoglobals

// Setup initializes the root logger for the given environment. It must be
// called once at process start, before any logging happens.
func Setup(environment string) {
	if environment == ProductionEnvironment {
		root, _ = zap.NewProduction()

		return
	}

	root, _ = zap.NewDevelopment()
}

// ctxKey keys the logger inside a context.
type ctxKey struct{}

// Get returns the logger attached to ctx, or the root logger.
func Get(ctx context.Context) *zap.Logger {
	if l, _ := ctx.Value(ctxKey{}).(*zap.Logger); l != nil {
		return l
	}

	return root
}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// With returns a context whose logger carries the additional fields.
func With(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// Debug logs at debug level using the context's logger.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs at info level using the context's logger.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs at warn level using the context's logger.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs at error level using the context's logger.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs at fatal level and exits the process.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}

// Sync flushes any buffered log entries on the context's logger.
func Sync(ctx context.Context) {
	_ = Get(ctx).Sync()
}
