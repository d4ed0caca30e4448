package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-levelgen/internal/difficulty"
	"github.com/KirkDiggler/rpg-levelgen/internal/handlers/levelgen/v1alpha1"
)

var stats difficulty.PerformanceStats

var nextDifficultyCmd = &cobra.Command{
	Use:   "next-difficulty",
	Short: "Compute the next difficulty from level performance",
	Long: `Compute the next difficulty. Example:

  next-difficulty --current 5 --deaths 0 --time 25 --coins 10 --total-coins 10`,
	RunE: nextDifficulty,
}

func init() {
	nextDifficultyCmd.Flags().IntVar(&stats.CurrentDifficulty, "current", 1, "Difficulty of the level just played")
	nextDifficultyCmd.Flags().IntVar(&stats.Deaths, "deaths", 0, "Deaths during the level")
	nextDifficultyCmd.Flags().Float64Var(&stats.CompletionTime, "time", 60, "Completion time in seconds")
	nextDifficultyCmd.Flags().IntVar(&stats.CoinsCollected, "coins", 0, "Coins collected")
	nextDifficultyCmd.Flags().IntVar(&stats.TotalCoins, "total-coins", 0, "Coins available")
}

func nextDifficulty(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGatewayClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.NextDifficulty(ctx, &v1alpha1.NextDifficultyRequest{Stats: stats})
	if err != nil {
		return describeError("next difficulty", err)
	}

	return printJSON(resp)
}
