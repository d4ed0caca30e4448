// Package main is the entry point for the level gateway
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-levelgen/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "levelgen",
	Short: "Level generation gateway",
	Long:  `levelgen fronts a generative text backend and serves validated platformer levels and NPC dialog over gRPC and HTTP.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
