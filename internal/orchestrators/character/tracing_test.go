package character_test

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	charactersvc "github.com/KirkDiggler/rpg-sheet/internal/services/character"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

var (
	spanRecorderOnce sync.Once
	spanRecorder     *tracetest.SpanRecorder
)

// recordSpans installs a recording tracer provider once per test binary
func recordSpans() *tracetest.SpanRecorder {
	spanRecorderOnce.Do(func() {
		spanRecorder = tracetest.NewSpanRecorder()
		otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spanRecorder)))
	})
	return spanRecorder
}

func (s *OrchestratorTestSuite) endedSpan(name, characterID string) sdktrace.ReadOnlySpan {
	for _, span := range recordSpans().Ended() {
		if span.Name() != name {
			continue
		}
		for _, attr := range span.Attributes() {
			if string(attr.Key) == "character.id" && attr.Value.AsString() == characterID {
				return span
			}
		}
	}
	s.FailNow("span not recorded", "%s for %s", name, characterID)
	return nil
}

func (s *OrchestratorTestSuite) TestCalculateStats_RepositoriesSeeSpan() {
	recordSpans()
	char := builders.NewCharacterBuilder().WithID("char_traced_stats").Build()

	var loadSpan, cacheSpan trace.SpanContext
	s.mockCharRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: char.ID}).
		DoAndReturn(func(ctx context.Context, _ characterrepo.GetInput) (*characterrepo.GetOutput, error) {
			loadSpan = trace.SpanContextFromContext(ctx)
			return &characterrepo.GetOutput{Character: char}, nil
		})
	s.mockStatsCache.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ statsrepo.GetInput) (*statsrepo.GetOutput, error) {
			cacheSpan = trace.SpanContextFromContext(ctx)
			return nil, errors.NotFound("no cached stats")
		})
	s.mockStatsCache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&statsrepo.PutOutput{}, nil)
	s.useRealEngine()

	_, err := s.orchestrator.CalculateStats(s.ctx, &charactersvc.CalculateStatsInput{CharacterID: char.ID})
	s.Require().NoError(err)

	span := s.endedSpan("character.CalculateStats", char.ID)
	s.True(loadSpan.IsValid())
	s.Equal(span.SpanContext().SpanID(), loadSpan.SpanID())
	s.Equal(span.SpanContext().SpanID(), cacheSpan.SpanID())
	s.Equal(codes.Unset, span.Status().Code)
}

func (s *OrchestratorTestSuite) TestSetPropertyState_FailureMarksSpan() {
	recordSpans()
	shield := builders.Armor("shield", dnd5e.ArmorCategoryShield, 2)
	shield.Equipped = false
	char := builders.NewCharacterBuilder().WithID("char_traced_property").WithProperty(shield).Build()

	var saveSpan trace.SpanContext
	s.expectGet(char)
	s.useRealEngine()
	s.mockStatsCache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(&statsrepo.PutOutput{}, nil)
	s.mockCharRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			saveSpan = trace.SpanContextFromContext(ctx)
			return nil, errors.Unavailable("storage offline")
		})

	_, err := s.orchestrator.SetPropertyState(s.ctx, &charactersvc.SetPropertyStateInput{
		CharacterID: char.ID,
		PropertyID:  "shield",
		Change:      charactersvc.PropertyChangeEquip,
	})
	s.Require().Error(err)

	span := s.endedSpan("character.SetPropertyState", char.ID)
	s.Equal(span.SpanContext().SpanID(), saveSpan.SpanID())
	s.Equal(codes.Error, span.Status().Code)
}
