// Package logging configures slog and bridges it to gRPC middleware and the event bus
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/events"
	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config selects the handler and level
type Config struct {
	// Level is one of debug, info, warn, error
	Level string
	// Format is "json" or "text"
	Format string
	Output io.Writer
}

// ParseLevel converts a level name to a slog.Level
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.InvalidArgumentf("unknown log level %q", level)
	}
}

// New builds a logger from cfg
func New(cfg Config) (*slog.Logger, error) {
	if cfg.Output == nil {
		return nil, errors.InvalidArgument("log output is required")
	}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	switch cfg.Format {
	case "", "json":
		return slog.New(slog.NewJSONHandler(cfg.Output, opts)), nil
	case "text":
		return slog.New(slog.NewTextHandler(cfg.Output, opts)), nil
	default:
		return nil, errors.InvalidArgumentf("unknown log format %q", cfg.Format)
	}
}

// InterceptorLogger adapts a slog.Logger to the gRPC logging interceptors
func InterceptorLogger(l *slog.Logger) grpclogging.Logger {
	return grpclogging.LoggerFunc(func(ctx context.Context, lvl grpclogging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

// SubscribeEvents logs every event of the given types at debug level and
// returns the subscription IDs
func SubscribeEvents(bus events.EventBus, l *slog.Logger, eventTypes ...string) []string {
	ids := make([]string, 0, len(eventTypes))
	for _, eventType := range eventTypes {
		id := bus.SubscribeFunc(eventType, 0, func(ctx context.Context, e events.Event) error {
			var sourceID string
			if e.Source() != nil {
				sourceID = e.Source().GetID()
			}
			l.DebugContext(ctx, "domain event",
				"event_type", e.Type(),
				"source_id", sourceID)
			return nil
		})
		ids = append(ids, id)
	}
	return ids
}
