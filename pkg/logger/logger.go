// Package logger provides the structured, levelled logger for the API,
// built on log/slog.
//
// Handlers pick up a per-request logger via WithCtx, so every line is
// correlated with the request id injected by the logging middleware:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("product created", "product_id", p.ID)
//	// → time=... level=INFO msg="product created" request_id=a1b2c3d4 product_id=7
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/Gentle-wave/scelloo-ecommerce-api/config"
)

var L *slog.Logger

func init() {
	var handler slog.Handler

	switch config.AppEnv() {
	case "production", "prod":
		// structured JSON for log aggregators
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		// human-readable for dev
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}

	L = slog.New(handler)
	slog.SetDefault(L)
}

// Setup attaches the optional MongoDB sink when LOG_MONGO_URI is
// configured. Called once from the serve command; returns the handler so
// the caller can Close() it on shutdown. A nil return means no sink was
// configured.
func Setup() (*MongoHandler, error) {
	uri := config.LogMongoURI()
	if uri == "" {
		return nil, nil
	}

	mh, err := NewMongoHandler(L.Handler(), uri, config.LogMongoDB(), config.LogMongoCollection())
	if err != nil {
		return nil, err
	}

	L = slog.New(mh)
	slog.SetDefault(L)
	return mh, nil
}

// ctxKey is the unexported key under which a per-request logger is stored.
type ctxKey struct{}

// WithCtx returns the request-scoped *slog.Logger stored by the logging
// middleware, or the base logger when none is present.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped logger (pre-tagged with the
// request id) into ctx. Called by the logging middleware.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// Short-hand helpers on the base logger.

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }
