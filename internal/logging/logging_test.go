package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/logging"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := logging.ParseLevel(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := logging.ParseLevel("trace")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "warn", Format: "json", Output: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown", "character_id", "char_1")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "char_1", entry["character_id"])
}

func TestNew_Errors(t *testing.T) {
	_, err := logging.New(logging.Config{Format: "xml", Output: &bytes.Buffer{}})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = logging.New(logging.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestInterceptorLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "debug", Format: "text", Output: &buf})
	require.NoError(t, err)

	logging.InterceptorLogger(logger).Log(context.Background(), grpclogging.LevelInfo, "finished call", "grpc.code", "OK")
	assert.Contains(t, buf.String(), "finished call")
	assert.Contains(t, buf.String(), "grpc.code=OK")
}

func TestSubscribeEvents(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Config{Level: "debug", Format: "text", Output: &buf})
	require.NoError(t, err)

	bus := events.NewBus()
	ids := logging.SubscribeEvents(bus, logger, character.EventStatsCalculated)
	require.Len(t, ids, 1)

	char := builders.NewCharacterBuilder().WithID("char_7").Build()
	event := events.NewGameEvent(character.EventStatsCalculated, character.NewCharacterEntity(char), nil)
	require.NoError(t, bus.Publish(context.Background(), event))

	assert.Contains(t, buf.String(), "event_type="+character.EventStatsCalculated)
	assert.Contains(t, buf.String(), "source_id=char_7")
}
