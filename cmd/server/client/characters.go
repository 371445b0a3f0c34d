package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/character/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/sheetfile"
)

var (
	characterID string
	playerID    string
	campaignID  string
)

var createCmd = &cobra.Command{
	Use:   "create <character-file>",
	Short: "Create a character from a YAML or JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		char, err := sheetfile.Load(args[0])
		if err != nil {
			return err
		}
		return call(cmd, v1alpha1.MethodCreateCharacter,
			v1alpha1.CharacterRequest{Character: char}, &v1alpha1.CharacterResponse{})
	},
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a character by ID",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodGetCharacter,
			v1alpha1.GetCharacterRequest{CharacterID: characterID}, &v1alpha1.CharacterResponse{})
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a character by ID",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodDeleteCharacter,
			v1alpha1.GetCharacterRequest{CharacterID: characterID}, &v1alpha1.DeleteCharacterResponse{})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List characters of a player or campaign",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return call(cmd, v1alpha1.MethodListCharacters,
			v1alpha1.ListCharactersRequest{PlayerID: playerID, CampaignID: campaignID},
			&v1alpha1.ListCharactersResponse{})
	},
}

func init() {
	for _, cmd := range []*cobra.Command{getCmd, deleteCmd} {
		cmd.Flags().StringVar(&characterID, "character-id", "", "Character ID (required)")
		_ = cmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	}

	listCmd.Flags().StringVar(&playerID, "player-id", "", "Player ID")
	listCmd.Flags().StringVar(&campaignID, "campaign-id", "", "Campaign ID")
	listCmd.MarkFlagsOneRequired("player-id", "campaign-id")
	listCmd.MarkFlagsMutuallyExclusive("player-id", "campaign-id")
}
