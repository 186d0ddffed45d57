package logging

import (
	"context"
	"github.com/rs/zerolog"
)

// FromContext returns the logger stored in ctx, or a disabled logger if there is none.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// WithComponent returns a context whose logger tags every entry with the component name.
func WithComponent(ctx context.Context, component string) context.Context {
	logger := FromContext(ctx).With().Str("component", component).Logger()
	return WithContext(ctx, logger)
}
