package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/sheetfile"
)

var (
	calcArmorSelection string
	calcStrict         bool
)

var calcCmd = &cobra.Command{
	Use:   "calc <character-file>",
	Short: "Calculate stats for a character file offline",
	Long: `Read a character snapshot from a YAML or JSON file, run the stats engine
and print the derived stats as JSON. No server or storage is needed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		char, err := sheetfile.Load(args[0])
		if err != nil {
			return err
		}
		return runCalc(cmd.Context(), char, calcArmorSelection, calcStrict, cmd.OutOrStdout())
	},
}

func init() {
	calcCmd.Flags().StringVar(&calcArmorSelection, "armor-selection", string(engine.ArmorSelectionFirst),
		"Body armor choice when several are equipped (first|highest)")
	calcCmd.Flags().BoolVar(&calcStrict, "strict", false, "Fail on rule violations instead of defaulting")
}

// calcResult is the calc command's output document
type calcResult struct {
	Stats     dnd5e.CalculatedStats `json:"stats"`
	Defaulted []string              `json:"defaulted,omitempty"`
	Warnings  []calcWarning         `json:"warnings,omitempty"`
}

type calcWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func runCalc(ctx context.Context, char *dnd5e.Character, selection string, strict bool, out io.Writer) error {
	eng, err := engine.New(&engine.Config{ArmorSelection: engine.ArmorSelection(selection)})
	if err != nil {
		return err
	}

	if strict {
		if _, err := eng.ValidateCharacter(ctx, &engine.ValidateCharacterInput{Character: char}); err != nil {
			return err
		}
	}

	output, err := eng.CalculateCharacterStats(ctx, &engine.CalculateCharacterStatsInput{Character: char})
	if err != nil {
		return err
	}

	result := calcResult{
		Stats:     output.Stats,
		Defaulted: output.Defaulted,
	}
	for _, w := range output.Warnings {
		result.Warnings = append(result.Warnings, calcWarning{Field: w.Field, Message: w.Message, Code: w.Code})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(err, "failed to write stats")
	}
	return nil
}
