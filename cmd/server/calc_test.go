package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils/builders"
)

func TestRunCalc(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runCalc(context.Background(), testutils.Wizard(), "first", false, &buf))

	var result calcResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Equal(t, int32(12), result.Stats.ArmorClass)
	require.NotNil(t, result.Stats.SpellSaveDC)
	assert.Equal(t, int32(13), *result.Stats.SpellSaveDC)
}

func TestRunCalc_ArmorSelection(t *testing.T) {
	char := builders.NewCharacterBuilder().
		WithProperty(builders.Armor("leather", dnd5e.ArmorCategoryLight, 11)).
		WithProperty(builders.Armor("plate", dnd5e.ArmorCategoryHeavy, 18)).
		Build()

	testCases := []struct {
		selection string
		want      int32
	}{
		{"first", 11},
		{"highest", 18},
	}

	for _, tc := range testCases {
		t.Run(tc.selection, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, runCalc(context.Background(), char, tc.selection, false, &buf))

			var result calcResult
			require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
			assert.Equal(t, tc.want, result.Stats.ArmorClass)
			assert.NotEmpty(t, result.Warnings)
		})
	}
}

func TestRunCalc_Errors(t *testing.T) {
	err := runCalc(context.Background(), testutils.Wizard(), "best", false, &bytes.Buffer{})
	assert.True(t, errors.IsInvalidArgument(err))

	invalid := builders.NewCharacterBuilder().WithLevel(30).Build()
	err = runCalc(context.Background(), invalid, "first", true, &bytes.Buffer{})
	assert.True(t, errors.IsInvalidArgument(err))

	err = runCalc(context.Background(), builders.NewCharacterBuilder().WithoutAbilities().Build(), "first", true, &bytes.Buffer{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRunCalc_ReportsDefaults(t *testing.T) {
	var buf bytes.Buffer
	char := builders.NewCharacterBuilder().WithoutAbilities().Build()
	require.NoError(t, runCalc(context.Background(), char, "first", false, &buf))

	var result calcResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	assert.Contains(t, result.Defaulted, "baseAbilities")
	assert.Equal(t, int32(10), result.Stats.ArmorClass)
}
