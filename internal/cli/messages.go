package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"promptmark/internal/domain"
	"promptmark/internal/usecase"
)

var (
	messagesType   string
	messagesSearch string
	messagesJSON   bool
)

var messagesCmd = &cobra.Command{
	Use:   "messages <chat-id>",
	Short: "List the messages of a chat",
	Long: `List the stored messages of a chat in chronological order.

Examples:
  promptmark messages abc-123
  promptmark messages abc-123 --type user -s docker`,
	Args: cobra.ExactArgs(1),
	RunE: runMessages,
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.Flags().StringVarP(&messagesType, "type", "t", "all", "message type: all, user, assistant, system")
	messagesCmd.Flags().StringVarP(&messagesSearch, "search", "s", "", "filter by message content")
	messagesCmd.Flags().BoolVar(&messagesJSON, "json", false, "output as JSON")
}

func runMessages(cmd *cobra.Command, args []string) error {
	uc, closeStore, err := bookmarkUseCase()
	if err != nil {
		return err
	}
	defer closeStore()

	msgs, err := uc.Messages(args[0], usecase.MessageFilter{Type: messagesType, Search: messagesSearch})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if messagesJSON {
		return writeJSON(out, msgs)
	}
	if len(msgs) == 0 {
		fmt.Fprintln(out, "No messages found.")
		return nil
	}

	table := newTable(out, []string{"#", "Type", "ID", "Content"})
	for _, m := range msgs {
		table.Append([]string{strconv.Itoa(m.Index), typeLabel(m.Type), m.ID, m.Content})
	}
	table.Render()
	return nil
}

func typeLabel(t domain.MessageType) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// formatDate renders a timestamp relative to today, like "Today, 14:05".
func formatDate(ts time.Time) string {
	now := time.Now()
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch {
	case !ts.Before(today):
		return "Today, " + ts.Format("15:04")
	case !ts.Before(today.AddDate(0, 0, -1)):
		return "Yesterday, " + ts.Format("15:04")
	default:
		return ts.Format("Jan 2, 2006")
	}
}
