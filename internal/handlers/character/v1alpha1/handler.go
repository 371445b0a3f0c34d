// Package v1alpha1 handles the grpc service interface
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/services/character"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CharacterService character.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil || c.CharacterService == nil {
		return errors.InvalidArgument("character service is required")
	}
	return nil
}

// Handler implements the character gRPC service
type Handler struct {
	characterService character.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		characterService: cfg.CharacterService,
	}, nil
}

var _ CharacterServiceServer = (*Handler)(nil)

// unary decodes the request, runs call and encodes the response, converting
// every error to a gRPC status
func unary[Req any, Resp any](
	ctx context.Context,
	in *structpb.Struct,
	call func(context.Context, *Req) (*Resp, error),
) (*structpb.Struct, error) {
	req := new(Req)
	if err := FromStruct(in, req); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp, err := call(ctx, req)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := ToStruct(resp)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return out, nil
}

// CreateCharacter stores a new character
func (h *Handler) CreateCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *CharacterRequest) (*CharacterResponse, error) {
		if req.Character == nil {
			return nil, errors.InvalidArgument("character is required")
		}

		output, err := h.characterService.CreateCharacter(ctx, &character.CreateCharacterInput{
			Character: req.Character,
		})
		if err != nil {
			return nil, err
		}
		return &CharacterResponse{Character: output.Character}, nil
	})
}

// GetCharacter returns a stored character
func (h *Handler) GetCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *GetCharacterRequest) (*CharacterResponse, error) {
		if req.CharacterID == "" {
			return nil, errors.InvalidArgument("characterId is required")
		}

		output, err := h.characterService.GetCharacter(ctx, &character.GetCharacterInput{
			CharacterID: req.CharacterID,
		})
		if err != nil {
			return nil, err
		}
		return &CharacterResponse{Character: output.Character}, nil
	})
}

// UpdateCharacter replaces a stored character
func (h *Handler) UpdateCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *CharacterRequest) (*CharacterResponse, error) {
		if req.Character == nil {
			return nil, errors.InvalidArgument("character is required")
		}

		output, err := h.characterService.UpdateCharacter(ctx, &character.UpdateCharacterInput{
			Character: req.Character,
		})
		if err != nil {
			return nil, err
		}
		return &CharacterResponse{Character: output.Character}, nil
	})
}

// DeleteCharacter removes a stored character
func (h *Handler) DeleteCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *GetCharacterRequest) (*DeleteCharacterResponse, error) {
		if req.CharacterID == "" {
			return nil, errors.InvalidArgument("characterId is required")
		}

		output, err := h.characterService.DeleteCharacter(ctx, &character.DeleteCharacterInput{
			CharacterID: req.CharacterID,
		})
		if err != nil {
			return nil, err
		}
		return &DeleteCharacterResponse{Message: output.Message}, nil
	})
}

// ListCharacters lists characters by player or campaign
func (h *Handler) ListCharacters(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *ListCharactersRequest) (*ListCharactersResponse, error) {
		output, err := h.characterService.ListCharacters(ctx, &character.ListCharactersInput{
			PlayerID:   req.PlayerID,
			CampaignID: req.CampaignID,
		})
		if err != nil {
			return nil, err
		}
		return &ListCharactersResponse{Characters: output.Characters}, nil
	})
}

// CalculateStats returns the derived stats of a stored character
func (h *Handler) CalculateStats(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *CalculateStatsRequest) (*StatsResponse, error) {
		if req.CharacterID == "" {
			return nil, errors.InvalidArgument("characterId is required")
		}

		output, err := h.characterService.CalculateStats(ctx, &character.CalculateStatsInput{
			CharacterID: req.CharacterID,
			SkipCache:   req.SkipCache,
		})
		if err != nil {
			return nil, err
		}
		return &StatsResponse{
			Character:    output.Character,
			Stats:        output.Stats,
			Defaulted:    output.Defaulted,
			Warnings:     convertWarnings(output.Warnings),
			Cached:       output.Cached,
			CalculatedAt: output.CalculatedAt.Unix(),
		}, nil
	})
}

// PreviewStats returns the derived stats of an unsaved snapshot
func (h *Handler) PreviewStats(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *CharacterRequest) (*StatsResponse, error) {
		if req.Character == nil {
			return nil, errors.InvalidArgument("character is required")
		}

		output, err := h.characterService.PreviewStats(ctx, &character.PreviewStatsInput{
			Character: req.Character,
		})
		if err != nil {
			return nil, err
		}
		return &StatsResponse{
			Stats:     output.Stats,
			Defaulted: output.Defaulted,
			Warnings:  convertWarnings(output.Warnings),
		}, nil
	})
}

// SetPropertyState equips, attunes or activates a property
func (h *Handler) SetPropertyState(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *SetPropertyStateRequest) (*StatsResponse, error) {
		output, err := h.characterService.SetPropertyState(ctx, &character.SetPropertyStateInput{
			CharacterID: req.CharacterID,
			PropertyID:  req.PropertyID,
			Change:      character.PropertyChange(req.Change),
		})
		if err != nil {
			return nil, err
		}
		return &StatsResponse{
			Character: output.Character,
			Stats:     output.Stats,
			Warnings:  convertWarnings(output.Warnings),
		}, nil
	})
}

// RollHitPoints rolls and stores maximum hit points
func (h *Handler) RollHitPoints(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *GetCharacterRequest) (*RollHitPointsResponse, error) {
		if req.CharacterID == "" {
			return nil, errors.InvalidArgument("characterId is required")
		}

		output, err := h.characterService.RollHitPoints(ctx, &character.RollHitPointsInput{
			CharacterID: req.CharacterID,
		})
		if err != nil {
			return nil, err
		}
		return &RollHitPointsResponse{
			Character: output.Character,
			Rolls:     output.Rolls,
			MaxHP:     output.MaxHP,
		}, nil
	})
}

// ValidateCharacter checks a snapshot or stored character against the rules
func (h *Handler) ValidateCharacter(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	return unary(ctx, in, func(ctx context.Context, req *ValidateCharacterRequest) (*ValidateCharacterResponse, error) {
		if req.Character == nil && req.CharacterID == "" {
			return nil, errors.InvalidArgument("character or characterId is required")
		}

		output, err := h.characterService.ValidateCharacter(ctx, &character.ValidateCharacterInput{
			CharacterID: req.CharacterID,
			Character:   req.Character,
		})
		if err != nil {
			return nil, err
		}

		resp := &ValidateCharacterResponse{
			IsValid:  output.IsValid,
			Warnings: convertWarnings(output.Warnings),
		}
		for _, e := range output.Errors {
			resp.Errors = append(resp.Errors, FieldError{Field: e.Field, Message: e.Message})
		}
		return resp, nil
	})
}

func convertWarnings(warnings []character.ValidationWarning) []Warning {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]Warning, len(warnings))
	for i, w := range warnings {
		out[i] = Warning{Field: w.Field, Message: w.Message, Type: w.Type}
	}
	return out
}
