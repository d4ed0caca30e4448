package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-levelgen/internal/handlers/levelgen/v1alpha1"
)

var (
	fallbackDifficulty int
	fallbackNumber     int
)

var fallbackLevelCmd = &cobra.Command{
	Use:   "fallback-level",
	Short: "Get a procedurally generated level",
	RunE:  fallbackLevel,
}

func init() {
	fallbackLevelCmd.Flags().IntVar(&fallbackDifficulty, "difficulty", 1, "Difficulty 1-10")
	fallbackLevelCmd.Flags().IntVar(&fallbackNumber, "level", 1, "Level number, selects the theme")
}

func fallbackLevel(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGatewayClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.FallbackLevel(ctx, &v1alpha1.FallbackLevelRequest{
		Difficulty:  fallbackDifficulty,
		LevelNumber: fallbackNumber,
	})
	if err != nil {
		return describeError("fallback level", err)
	}

	return printJSON(resp)
}
