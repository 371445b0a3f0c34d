// Package client provides commands that call a running rpg-sheet server
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-sheet/internal/handlers/character/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the character service",
	Long:  `Client commands call a running rpg-sheet server over gRPC and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(calcStatsCmd)
	ClientCmd.AddCommand(previewCmd)
	ClientCmd.AddCommand(setPropertyCmd)
	ClientCmd.AddCommand(rollHPCmd)
	ClientCmd.AddCommand(validateCmd)
}

// createCharacterClient creates a character service client
func createCharacterClient() (*v1alpha1.CharacterServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewCharacterServiceClient(conn), cleanup, nil
}

// call sends one request and prints the response
func call(cmd *cobra.Command, method string, req, resp any) error {
	client, cleanup, err := createCharacterClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := client.Call(ctx, method, req, resp); err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
