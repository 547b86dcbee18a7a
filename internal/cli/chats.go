package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"promptmark/internal/adapter/analyzer"
	"promptmark/internal/usecase"
)

var (
	chatsSearch string
	chatsJSON   bool
)

var chatsCmd = &cobra.Command{
	Use:   "chats",
	Short: "List bookmarked chats",
	Long: `List tracked chats, newest first. --search keeps chats whose title or
site name contains the term.

Examples:
  promptmark chats
  promptmark chats -s gemini --json`,
	Args: cobra.NoArgs,
	RunE: runChats,
}

func init() {
	rootCmd.AddCommand(chatsCmd)
	chatsCmd.Flags().StringVarP(&chatsSearch, "search", "s", "", "filter by title or site name")
	chatsCmd.Flags().BoolVar(&chatsJSON, "json", false, "output as JSON")
}

func runChats(cmd *cobra.Command, args []string) error {
	uc, closeStore, err := bookmarkUseCase()
	if err != nil {
		return err
	}
	defer closeStore()

	bookmarks, err := uc.List(chatsSearch)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if chatsJSON {
		return writeJSON(out, bookmarks)
	}
	if len(bookmarks) == 0 {
		if chatsSearch != "" {
			fmt.Fprintln(out, "No bookmarks match your search.")
		} else {
			fmt.Fprintln(out, "No bookmarks yet. Track a chat with 'promptmark track'.")
		}
		return nil
	}

	table := newTable(out, []string{"ID", "Site", "Title", "Messages", "Updated"})
	for _, b := range bookmarks {
		table.Append([]string{
			b.ChatID,
			b.SiteName,
			b.Title,
			strconv.Itoa(b.MessageCount),
			formatDate(b.Timestamp),
		})
	}
	table.Render()
	return nil
}

// bookmarkUseCase opens the chat store and wires a BookmarkUseCase over it.
func bookmarkUseCase() (*usecase.BookmarkUseCase, func(), error) {
	st, err := openStore(false)
	if err != nil {
		return nil, nil, err
	}
	uc := usecase.NewBookmarkUseCase(st, analyzer.NewExtractor())
	return uc, func() { st.Close() }, nil
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetColumnSeparator(" ")
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
