// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "rpg-sheet",
	Short: "D&D 5e character sheet server",
	Long:  `rpg-sheet stores D&D 5e characters and derives their stats over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
