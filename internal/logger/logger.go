package logger

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/dshowevents/contratia/internal/config"
)

type ctxKey struct{}

var Module = fx.Module("logger",
	fx.Provide(New),
	fx.Invoke(func(l *zap.Logger) {
		zap.ReplaceGlobals(l)
	}),
)

// New builds the process logger. Production gets JSON output;
// everything else gets the human-readable development encoder.
func New(cfg config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// WithContext stores a request-scoped logger on the context.
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the request-scoped logger when one was attached
// by the middleware, falling back to the global logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*zap.Logger); ok {
		return l
	}
	return zap.L()
}
