package client

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-levelgen/internal/handlers/levelgen/v1alpha1"
)

var (
	dialogNPC      string
	dialogMessage  string
	dialogPrompt   string
	dialogCacheKey string
	dialogLevel    int
)

var generateDialogCmd = &cobra.Command{
	Use:   "generate-dialog",
	Short: "Generate an NPC dialog line",
	Long: `Generate a dialog line, served from the cache when the key is known. Examples:

  generate-dialog --npc Toad --message "where is the goal?" --cache-key toad:goal
  generate-dialog --prompt "Say hello as a friendly frog"`,
	RunE: generateDialog,
}

func init() {
	generateDialogCmd.Flags().StringVar(&dialogNPC, "npc", "", "NPC name")
	generateDialogCmd.Flags().StringVar(&dialogMessage, "message", "", "What the player said")
	generateDialogCmd.Flags().StringVar(&dialogPrompt, "prompt", "", "Raw prompt; overrides npc and message")
	generateDialogCmd.Flags().StringVar(&dialogCacheKey, "cache-key", "", "Cache key for the response")
	generateDialogCmd.Flags().IntVar(&dialogLevel, "level", 1, "Level number, selects the theme")
}

func generateDialog(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createGatewayClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := requestContext()
	defer cancel()

	resp, err := client.GenerateDialog(ctx, &v1alpha1.GenerateDialogRequest{
		Prompt:        dialogPrompt,
		CacheKey:      dialogCacheKey,
		NPCName:       dialogNPC,
		PlayerMessage: dialogMessage,
		LevelNumber:   dialogLevel,
	})
	if err != nil {
		return describeError("generate dialog", err)
	}

	return printJSON(resp)
}
