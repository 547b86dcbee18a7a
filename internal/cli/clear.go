package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every bookmarked chat",
	Long: `Remove all tracked chats from the local store. The database itself and
its schema version are kept. Requires --yes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !clearYes {
			return fmt.Errorf("refusing to clear all chats without --yes")
		}

		uc, closeStore, err := bookmarkUseCase()
		if err != nil {
			return err
		}
		defer closeStore()

		if err := uc.Clear(); err != nil {
			return err
		}
		GetLogger().Infof("cleared all chats")
		fmt.Fprintln(cmd.OutOrStdout(), "Cleared all chats")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(clearCmd)
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "confirm removal of every chat")
}
