// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	characterrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/character"
	charactermock "github.com/KirkDiggler/rpg-sheet/internal/repositories/character/mock"
	statsrepo "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats"
	statsmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/stats/mock"
)

// ExpectCharacterGet expects one load of char by its ID. The context is not
// matched since traced calls hand the repository a span context.
func ExpectCharacterGet(mockRepo *charactermock.MockRepository, char *dnd5e.Character) *gomock.Call {
	return mockRepo.EXPECT().
		Get(gomock.Any(), characterrepo.GetInput{ID: char.ID}).
		Return(&characterrepo.GetOutput{Character: char}, nil)
}

// ExpectCharacterUpdateEcho expects one update and returns the stored snapshot unchanged
func ExpectCharacterUpdateEcho(mockRepo *charactermock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input characterrepo.UpdateInput) (*characterrepo.UpdateOutput, error) {
			return &characterrepo.UpdateOutput{Character: input.Character}, nil
		})
}

// ExpectStatsCacheMiss expects a lookup that misses followed by a store of
// the fresh result
func ExpectStatsCacheMiss(mockCache *statsmock.MockRepository, characterID string) {
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input statsrepo.GetInput) (*statsrepo.GetOutput, error) {
			if input.CharacterID != characterID {
				return nil, errors.Internalf("unexpected cache lookup for %s", input.CharacterID)
			}
			return nil, errors.NotFound("stats not cached")
		})
	mockCache.EXPECT().
		Put(gomock.Any(), gomock.Any()).
		Return(&statsrepo.PutOutput{}, nil)
}
