// Package client provides commands that exercise the gateway over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/handlers/levelgen/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
	callerID   string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the level gateway",
	Long:  `Client commands call a running gateway over gRPC and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 45*time.Second, "Request timeout")
	ClientCmd.PersistentFlags().StringVar(&callerID, "caller-id", "", "Caller identity for admission (defaults to the connection address)")

	ClientCmd.AddCommand(generateLevelCmd)
	ClientCmd.AddCommand(generateDialogCmd)
	ClientCmd.AddCommand(nextDifficultyCmd)
	ClientCmd.AddCommand(fallbackLevelCmd)
}

// createGatewayClient connects to the server
func createGatewayClient() (v1alpha1.GatewayServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewGatewayServiceClient(conn), cleanup, nil
}

// requestContext applies the timeout and caller identity
func requestContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	if callerID != "" {
		ctx = metadata.AppendToOutgoingContext(ctx, v1alpha1.CallerIDHeader, callerID)
	}
	return ctx, cancel
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeError prints the status and any degrade hints the server attached
func describeError(op string, err error) error {
	meta := errors.GetMeta(errors.FromGRPCError(err))
	if len(meta) > 0 {
		_ = printJSON(meta) // nolint:errcheck // best effort
	}
	return fmt.Errorf("%s failed: %w", op, err)
}
