package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/character/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/sheetfile"
)

var (
	skipCache  bool
	propertyID string
	change     string
)

var calcStatsCmd = &cobra.Command{
	Use:   "calc-stats",
	Short: "Calculate stats for a stored character",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodCalculateStats,
			v1alpha1.CalculateStatsRequest{CharacterID: characterID, SkipCache: skipCache},
			&v1alpha1.StatsResponse{})
	},
}

var previewCmd = &cobra.Command{
	Use:   "preview <character-file>",
	Short: "Calculate stats for an unsaved character file on the server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		char, err := sheetfile.Load(args[0])
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.MethodPreviewStats,
			v1alpha1.CharacterRequest{Character: char}, &v1alpha1.StatsResponse{})
	},
}

var setPropertyCmd = &cobra.Command{
	Use:   "set-property",
	Short: "Equip, attune or activate a property and recalculate",
	Long: `Apply one state change to a character property.
Changes: equip, unequip, attune, unattune, activate, deactivate.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodSetPropertyState,
			v1alpha1.SetPropertyStateRequest{
				CharacterID: characterID,
				PropertyID:  propertyID,
				Change:      change,
			},
			&v1alpha1.StatsResponse{})
	},
}

var rollHPCmd = &cobra.Command{
	Use:   "roll-hp",
	Short: "Roll and store maximum hit points",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodRollHitPoints,
			v1alpha1.GetCharacterRequest{CharacterID: characterID}, &v1alpha1.RollHitPointsResponse{})
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [character-file]",
	Short: "Validate a stored character or a character file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := v1alpha1.ValidateCharacterRequest{CharacterID: characterID}
		if len(args) == 1 {
			char, err := sheetfile.Load(args[0])
			if err != nil {
				return err
			}
			req.Character = char
		}
		return call(cmd, v1alpha1.MethodValidateCharacter, req, &v1alpha1.ValidateCharacterResponse{})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{calcStatsCmd, setPropertyCmd, rollHPCmd} {
		cmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}
	validateCmd.Flags().StringVar(&characterID, "character-id", "", "Character ID")

	calcStatsCmd.Flags().BoolVar(&skipCache, "skip-cache", false, "Ignore cached stats")

	setPropertyCmd.Flags().StringVar(&propertyID, "property-id", "", "Property ID (required)")
	setPropertyCmd.Flags().StringVar(&change, "change", "", "State change (required)")
	_ = setPropertyCmd.MarkFlagRequired("property-id") // nolint:errcheck // safe to ignore in init
	_ = setPropertyCmd.MarkFlagRequired("change")      // nolint:errcheck // safe to ignore in init
}
