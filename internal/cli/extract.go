package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"promptmark/internal/adapter/analyzer"
)

var extractJSON bool

var extractCmd = &cobra.Command{
	Use:   "extract [prompt...]",
	Short: "Print the keywords of a prompt",
	Long: `Print up to three keywords of a prompt: its first tokens that are not
common English stopwords, in their original order.

The prompt is read from the arguments, or from stdin when none are given.

Examples:
  promptmark extract "Data is the new oil for modern enterprises"
  echo "the quick brown fox" | promptmark extract --json`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output as JSON")
}

func runExtract(cmd *cobra.Command, args []string) error {
	prompt := strings.Join(args, " ")
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read prompt: %w", err)
		}
		prompt = string(data)
	}

	keywords := analyzer.ExtractKeywords(prompt)
	GetLogger().Debugf("extracted %d keywords from %d byte prompt", len(keywords), len(prompt))

	out := cmd.OutOrStdout()
	if extractJSON {
		enc := json.NewEncoder(out)
		return enc.Encode(keywords)
	}
	if len(keywords) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No keywords found.")
		return nil
	}
	for _, k := range keywords {
		fmt.Fprintln(out, k)
	}
	return nil
}
