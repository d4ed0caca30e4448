package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-levelgen/internal/handlers/levelgen/v1alpha1"
)

var (
	levelDifficulty int
	levelNumber     int
	levelPrompt     string
)

var generateLevelCmd = &cobra.Command{
	Use:   "generate-level",
	Short: "Generate a validated level",
	Long: `Generate a level from the backend. Examples:

  generate-level --difficulty 4 --level 2
  generate-level --prompt "Generate a short lava level as JSON"`,
	RunE: generateLevel,
}

func init() {
	generateLevelCmd.Flags().IntVar(&levelDifficulty, "difficulty", 1, "Difficulty 1-10")
	generateLevelCmd.Flags().IntVar(&levelNumber, "level", 1, "Level number, selects the theme")
	generateLevelCmd.Flags().StringVar(&levelPrompt, "prompt", "", "Raw prompt; overrides difficulty and level")
}

func generateLevel(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGatewayClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GenerateLevel(ctx, &v1alpha1.GenerateLevelRequest{
		Prompt:      levelPrompt,
		Difficulty:  levelDifficulty,
		LevelNumber: levelNumber,
	})
	if err != nil {
		return describeError("generate level", err)
	}

	return printJSON(resp)
}
