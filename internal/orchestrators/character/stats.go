package character

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// calculation is one engine run, or a cache hit standing in for one
type calculation struct {
	stats     *dnd5e.CalculatedStats
	defaulted []string
	warnings  []character.ValidationWarning
	cached    bool
}

// CalculateStats derives the stats of a stored character, consulting the
// cache first unless SkipCache is set
func (o *Orchestrator) CalculateStats(
	ctx context.Context,
	input *character.CalculateStatsInput,
) (*character.CalculateStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := tracer.Start(ctx, "character.CalculateStats",
		trace.WithAttributes(attribute.String("character.id", input.CharacterID)))
	defer span.End()

	char, err := o.loadCharacter(ctx, input.CharacterID)
	if err != nil {
		recordError(span, err)
		return nil, err
	}

	calc, fingerprint, err := o.calculate(ctx, char, input.SkipCache)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	span.SetAttributes(attribute.Bool("stats.cached", calc.cached))

	o.publish(ctx, EventStatsCalculated, char, map[string]any{
		EventKeyFingerprint: fingerprint,
		EventKeyCached:      calc.cached,
		EventKeyArmorClass:  calc.stats.ArmorClass,
	})

	return &character.CalculateStatsOutput{
		Character:    char,
		Stats:        calc.stats,
		Defaulted:    calc.defaulted,
		Warnings:     calc.warnings,
		Cached:       calc.cached,
		CalculatedAt: o.clock.Now(),
	}, nil
}

// PreviewStats derives stats for a snapshot without storing anything
func (o *Orchestrator) PreviewStats(
	ctx context.Context,
	input *character.PreviewStatsInput,
) (*character.PreviewStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	out, err := o.engine.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{
		Character: input.Character,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate stats")
	}

	return &character.PreviewStatsOutput{
		Stats:     &out.Stats,
		Defaulted: out.Defaulted,
		Warnings:  convertWarnings(out.Warnings),
	}, nil
}

// ValidateCharacter runs strict validation on a snapshot or a stored character.
// Rule violations are reported in the output, not as an error.
func (o *Orchestrator) ValidateCharacter(
	ctx context.Context,
	input *character.ValidateCharacterInput,
) (*character.ValidateCharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	char := input.Character
	if char == nil {
		loaded, err := o.loadCharacter(ctx, input.CharacterID)
		if err != nil {
			return nil, err
		}
		char = loaded
	}

	out, err := o.engine.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Character: char})
	if err != nil {
		fields, ok := validationFields(err)
		if !ok {
			return nil, errors.Wrap(err, "failed to validate character")
		}
		return &character.ValidateCharacterOutput{
			IsValid: false,
			Errors:  fields,
		}, nil
	}

	return &character.ValidateCharacterOutput{
		IsValid:  true,
		Warnings: convertWarnings(out.Warnings),
	}, nil
}

// calculate returns stats for the snapshot and the fingerprint they are
// cached under. Cache failures degrade to a fresh calculation.
func (o *Orchestrator) calculate(
	ctx context.Context,
	char *dnd5e.Character,
	skipCache bool,
) (*calculation, string, error) {
	fingerprint, err := statsrepo.Fingerprint(char, o.statsVersion)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to fingerprint character")
	}

	if o.statsCache != nil && !skipCache {
		hit, err := o.statsCache.Get(ctx, statsrepo.GetInput{CharacterID: char.ID, Fingerprint: fingerprint})
		switch {
		case err == nil:
			return &calculation{
				stats:     hit.Stats,
				defaulted: hit.Defaulted,
				warnings:  warningsFromCache(hit.Warnings),
				cached:    true,
			}, fingerprint, nil
		case !errors.IsNotFound(err):
			slog.WarnContext(ctx, "stats cache read failed",
				"character_id", char.ID,
				"error", err.Error())
		}
	}

	out, err := o.engine.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{Character: char})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to calculate stats")
	}

	calc := &calculation{
		stats:     &out.Stats,
		defaulted: out.Defaulted,
		warnings:  convertWarnings(out.Warnings),
	}
	o.cacheStats(ctx, char.ID, fingerprint, calc)

	return calc, fingerprint, nil
}

func (o *Orchestrator) cacheStats(ctx context.Context, characterID, fingerprint string, calc *calculation) {
	if o.statsCache == nil {
		return
	}

	_, err := o.statsCache.Put(ctx, statsrepo.PutInput{
		CharacterID: characterID,
		Fingerprint: fingerprint,
		Stats:       calc.stats,
		Defaulted:   calc.defaulted,
		Warnings:    warningsToCache(calc.warnings),
	})
	if err != nil {
		slog.WarnContext(ctx, "stats cache write failed",
			"character_id", characterID,
			"error", err.Error())
	}
}

// validationFields flattens the field errors of an InvalidArgument error
// built by errors.ValidationBuilder
func validationFields(err error) ([]character.ValidationError, bool) {
	if !errors.IsInvalidArgument(err) {
		return nil, false
	}

	fields, ok := errors.GetMeta(err)[errors.MetaValidationErrors].(map[string][]string)
	if !ok {
		return []character.ValidationError{{Message: errors.GetMessage(err)}}, true
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]character.ValidationError, 0, len(names))
	for _, name := range names {
		out = append(out, character.ValidationError{
			Field:   name,
			Message: strings.Join(fields[name], ", "),
		})
	}
	return out, true
}

func convertWarnings(warnings []engine.ValidationWarning) []character.ValidationWarning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]character.ValidationWarning, len(warnings))
	for i, w := range warnings {
		out[i] = character.ValidationWarning{Field: w.Field, Message: w.Message, Type: w.Code}
	}
	return out
}

func warningsToCache(warnings []character.ValidationWarning) []statsrepo.Warning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]statsrepo.Warning, len(warnings))
	for i, w := range warnings {
		out[i] = statsrepo.Warning{Field: w.Field, Message: w.Message, Code: w.Type}
	}
	return out
}

func warningsFromCache(warnings []statsrepo.Warning) []character.ValidationWarning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]character.ValidationWarning, len(warnings))
	for i, w := range warnings {
		out[i] = character.ValidationWarning{Field: w.Field, Message: w.Message, Type: w.Code}
	}
	return out
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
