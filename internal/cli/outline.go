package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"promptmark/internal/usecase"
)

var (
	outlineType   string
	outlineSearch string
	outlineJSON   bool
)

var outlineCmd = &cobra.Command{
	Use:   "outline <chat-id>",
	Short: "Show a keyword outline of a chat",
	Long: `Show each message of a chat with its keywords. --search keeps messages
having a keyword that starts with the term.

Examples:
  promptmark outline abc-123
  promptmark outline abc-123 --type user -s kube`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
	outlineCmd.Flags().StringVarP(&outlineType, "type", "t", "all", "message type: all, user, assistant, system")
	outlineCmd.Flags().StringVarP(&outlineSearch, "search", "s", "", "filter by keyword prefix")
	outlineCmd.Flags().BoolVar(&outlineJSON, "json", false, "output as JSON")
}

func runOutline(cmd *cobra.Command, args []string) error {
	uc, closeStore, err := bookmarkUseCase()
	if err != nil {
		return err
	}
	defer closeStore()

	entries, err := uc.Outline(args[0], usecase.MessageFilter{Type: outlineType, Search: outlineSearch})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outlineJSON {
		return writeJSON(out, entries)
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, "No messages found.")
		return nil
	}

	table := newTable(out, []string{"#", "Type", "Keywords", "Preview"})
	for _, e := range entries {
		preview := e.Message.Content
		if r := []rune(preview); len(r) > 60 {
			preview = string(r[:60]) + "..."
		}
		table.Append([]string{
			strconv.Itoa(e.Message.Index),
			typeLabel(e.Message.Type),
			strings.Join(e.Keywords, ", "),
			preview,
		})
	}
	table.Render()
	return nil
}
