package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <chat-id>...",
	Short: "Delete bookmarked chats",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uc, closeStore, err := bookmarkUseCase()
		if err != nil {
			return err
		}
		defer closeStore()

		for _, id := range args {
			if err := uc.Delete(id); err != nil {
				return err
			}
			GetLogger().Infof("deleted chat %s", id)
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
